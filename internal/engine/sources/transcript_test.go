package sources

import (
	"encoding/json"
	"testing"
)

func TestPickBestTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "https://yt/tt?lang=de", LanguageCode: "de"},
		{BaseURL: "https://yt/tt?lang=en&kind=asr", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "https://yt/tt?lang=en", LanguageCode: "en"},
		{BaseURL: "https://yt/tt?lang=ru", LanguageCode: "ru"},
	}

	tests := []struct {
		name  string
		langs []string
		want  string
	}{
		{"manual preferred over asr", []string{"en"}, "https://yt/tt?lang=en"},
		{"preferred language wins", []string{"ru", "en"}, "https://yt/tt?lang=ru"},
		{"fallback language used", []string{"fr", "de"}, "https://yt/tt?lang=de"},
		{"english fallback", []string{"fr"}, "https://yt/tt?lang=en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track, ok := pickBestTrack(tracks, tt.langs)
			if !ok {
				t.Fatal("no usable track")
			}
			if track.BaseURL != tt.want {
				t.Errorf("picked %q, want %q", track.BaseURL, tt.want)
			}
		})
	}
}

func TestPickBestTrackAsrOnly(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "https://yt/tt?lang=en&kind=asr", LanguageCode: "en", Kind: "asr"},
	}
	track, ok := pickBestTrack(tracks, []string{"en"})
	if !ok || track.Kind != "asr" {
		t.Errorf("asr track should be usable when nothing else exists: %+v ok=%v", track, ok)
	}
}

func TestPickBestTrackAllPoToken(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "https://yt/tt?lang=en&exp=xpe", LanguageCode: "en"},
	}
	if _, ok := pickBestTrack(tracks, []string{"en"}); ok {
		t.Error("PoToken-only tracks should be reported unusable")
	}
}

func TestExtractTranscriptToken(t *testing.T) {
	data := []byte(`{"engagementPanels":[{"getTranscriptEndpoint":{"params":"CgtkUXc0dzlXZ1hjUQ%3D%3D"}}]}`)
	token, err := extractTranscriptToken(data)
	if err != nil {
		t.Fatalf("extractTranscriptToken error: %v", err)
	}
	if token != "CgtkUXc0dzlXZ1hjUQ==" {
		t.Errorf("token = %q", token)
	}
}

func TestExtractTranscriptTokenMissing(t *testing.T) {
	if _, err := extractTranscriptToken([]byte(`{"engagementPanels":[]}`)); err == nil {
		t.Error("missing endpoint should error")
	}
}

func TestParseTranscriptSegments(t *testing.T) {
	raw := `{"actions":[{"updateEngagementPanelAction":{"content":{"transcriptRenderer":{"content":{"transcriptSearchPanelRenderer":{"body":{"transcriptSegmentListRenderer":{"initialSegments":[
		{"transcriptSegmentRenderer":{"snippet":{"runs":[{"text":"hello"}]}}},
		{"transcriptSegmentRenderer":{"snippet":{"runs":[{"text":"world"},{"text":"again"}]}}},
		{"transcriptSectionHeaderRenderer":{}}
	]}}}}}}}}]}`

	var resp ytGetTranscriptResp
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := parseTranscriptSegments(resp)
	if got != "hello world again" {
		t.Errorf("parseTranscriptSegments = %q", got)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", `{"a":1};var x`, `{"a":1}`},
		{"nested", `{"a":{"b":{"c":1}}}trailing`, `{"a":{"b":{"c":1}}}`},
		{"braces in strings", `{"a":"}{"}rest`, `{"a":"}{"}`},
		{"escaped quote", `{"a":"\"}"}rest`, `{"a":"\"}"}`},
		{"string ends in escaped backslash", `{"a":"b\\"}rest`, `{"a":"b\\"}`},
		{"escaped backslash then brace in string", `{"a":"\\}"}rest`, `{"a":"\\}"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSON([]byte(tt.input))
			if string(got) != tt.want {
				t.Errorf("extractJSON = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONInvalid(t *testing.T) {
	for _, input := range []string{"", "not json", `{"unterminated":`} {
		if got := extractJSON([]byte(input)); got != nil {
			t.Errorf("extractJSON(%q) = %q, want nil", input, got)
		}
	}
}

func TestNeedsPoToken(t *testing.T) {
	if !needsPoToken("https://yt/tt?x=1&exp=xpe&y=2") {
		t.Error("exp=xpe track should need PoToken")
	}
	if needsPoToken("https://yt/tt?x=1") {
		t.Error("plain track should not need PoToken")
	}
}

func TestGenerateVisitorData(t *testing.T) {
	v := generateVisitorData()
	if len(v) != 11 {
		t.Errorf("visitor data length = %d, want 11", len(v))
	}
}
