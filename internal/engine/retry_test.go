package engine

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var fastRetry = RetryConfig{
	MaxRetries:  3,
	InitialWait: time.Millisecond,
	MaxWait:     5 * time.Millisecond,
	Multiplier:  2.0,
}

func TestRetryDoSucceedsFirstTry(t *testing.T) {
	calls := 0
	got, err := RetryDo(context.Background(), fastRetry, func() (int, error) {
		calls++
		return 42, nil
	})
	if err != nil || got != 42 {
		t.Fatalf("got %d, %v", got, err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryDoNonRetryableStops(t *testing.T) {
	calls := 0
	wantErr := errors.New("permanent")
	_, err := RetryDo(context.Background(), fastRetry, func() (int, error) {
		calls++
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (non-retryable)", calls)
	}
}

func TestRetryDoRetriesRetryable(t *testing.T) {
	calls := 0
	got, err := RetryDo(context.Background(), fastRetry, func() (int, error) {
		calls++
		if calls < 3 {
			return 0, &httpStatusError{StatusCode: 503}
		}
		return 7, nil
	})
	if err != nil || got != 7 {
		t.Fatalf("got %d, %v", got, err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryDoContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RetryDo(ctx, fastRetry, func() (int, error) {
		return 0, &httpStatusError{StatusCode: 500}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestRetryHTTP(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := RetryHTTP(context.Background(), fastRetry, func() (*http.Response, error) {
		return http.Get(srv.URL)
	})
	if err != nil {
		t.Fatalf("RetryHTTP error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if hits != 2 {
		t.Errorf("hits = %d, want 2", hits)
	}
}

func TestIsRetryableStatus(t *testing.T) {
	for _, code := range []int{429, 500, 502, 503, 504} {
		if !isRetryableStatus(code) {
			t.Errorf("status %d should be retryable", code)
		}
	}
	for _, code := range []int{200, 301, 400, 401, 403, 404} {
		if isRetryableStatus(code) {
			t.Errorf("status %d should not be retryable", code)
		}
	}
}
