package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func okHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
}

func doRequest(h httprouter.Handle, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h(rec, req, nil)
	return rec.Code
}

func TestBurstExceededReturns429(t *testing.T) {
	rl := NewRateLimiter()
	h := rl.Limit(okHandler)

	for i := 0; i < rl.burst; i++ {
		if code := doRequest(h, "10.0.0.1:5000"); code != http.StatusOK {
			t.Fatalf("request %d within burst got %d", i+1, code)
		}
	}

	if code := doRequest(h, "10.0.0.1:5000"); code != http.StatusTooManyRequests {
		t.Errorf("request past burst got %d, want %d", code, http.StatusTooManyRequests)
	}
}

func TestBucketsArePerClient(t *testing.T) {
	rl := NewRateLimiter()
	h := rl.Limit(okHandler)

	for i := 0; i <= rl.burst; i++ {
		doRequest(h, "10.0.0.1:5000")
	}

	if code := doRequest(h, "10.0.0.2:5000"); code != http.StatusOK {
		t.Errorf("fresh client got %d, want %d", code, http.StatusOK)
	}
}
