package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(w, `{"error": %q}`, err.Error())
		return
	}
	w.Write(body)
}

// errorBody is the uniform error payload: content fields absent, a single
// human-readable message. Credential values never end up in here.
type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}
