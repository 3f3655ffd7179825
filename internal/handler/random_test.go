package handler

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/miscapi/miscapi-go/internal/passphrase"
	"github.com/miscapi/miscapi-go/internal/random"
	"github.com/miscapi/miscapi-go/internal/service"
	"github.com/miscapi/miscapi-go/internal/wordlist"
)

func newRandomHandler(t *testing.T) *RandomHandler {
	t.Helper()
	store, err := wordlist.Embedded()
	if err != nil {
		t.Fatal(err)
	}
	src := random.NewSource()
	return NewRandomHandler(service.NewRandomService(src, passphrase.NewComposer(store, src)))
}

func get(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandleFlipCoin(t *testing.T) {
	h := newRandomHandler(t)

	rec := get(t, h.HandleFlipCoin, "/flip-coin")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); body != "0" && body != "1" {
		t.Errorf("body = %q, want 0 or 1", body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
}

func TestHandleRollDice(t *testing.T) {
	h := newRandomHandler(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "default sides", target: "/roll-dice", wantStatus: http.StatusOK},
		{name: "custom sides", target: "/roll-dice?sides=20", wantStatus: http.StatusOK},
		{name: "too few sides", target: "/roll-dice?sides=1", wantStatus: http.StatusBadRequest},
		{name: "too many sides", target: "/roll-dice?sides=1001", wantStatus: http.StatusBadRequest},
		{name: "not a number", target: "/roll-dice?sides=abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h.HandleRollDice, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			n, err := strconv.Atoi(rec.Body.String())
			if err != nil {
				t.Fatalf("body %q is not an integer", rec.Body.String())
			}
			if n < 1 || n > 1000 {
				t.Errorf("roll = %d, out of range", n)
			}
		})
	}
}

func TestHandleRandomNumber(t *testing.T) {
	h := newRandomHandler(t)

	rec := get(t, h.HandleRandomNumber, "/random-number?min=5&max=5")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "5" {
		t.Errorf("body = %q, want 5", rec.Body.String())
	}
}

func TestHandleRandomNumberInvertedRange(t *testing.T) {
	h := newRandomHandler(t)

	rec := get(t, h.HandleRandomNumber, "/random-number?min=10&max=5")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleRandomNumberOutOfBounds(t *testing.T) {
	h := newRandomHandler(t)

	rec := get(t, h.HandleRandomNumber, "/random-number?max=1000000001")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleRandomString(t *testing.T) {
	h := newRandomHandler(t)

	rec := get(t, h.HandleRandomString, "/random-string?length=42")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(rec.Body.String()) != 42 {
		t.Errorf("body length = %d, want 42", len(rec.Body.String()))
	}

	rec = get(t, h.HandleRandomString, "/random-string?length=0")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleUUID(t *testing.T) {
	h := newRandomHandler(t)

	rec := get(t, h.HandleUUID, "/random-uuid?count=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	lines := strings.Split(rec.Body.String(), "\n")
	if len(lines) != 3 {
		t.Errorf("got %d lines, want 3: %q", len(lines), rec.Body.String())
	}

	rec = get(t, h.HandleUUID, "/random-uuid?count=101")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlePassphrase(t *testing.T) {
	h := newRandomHandler(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "defaults", target: "/random-passphrase", wantStatus: http.StatusOK},
		{name: "all options", target: "/random-passphrase?words=6&numbers=true&symbols=true&separator=.&case=upper", wantStatus: http.StatusOK},
		{name: "unknown case falls back to title", target: "/random-passphrase?case=sarcastic", wantStatus: http.StatusOK},
		{name: "empty separator", target: "/random-passphrase?separator=", wantStatus: http.StatusOK},
		{name: "separator too long", target: "/random-passphrase?separator=----", wantStatus: http.StatusBadRequest},
		{name: "too many words", target: "/random-passphrase?words=21", wantStatus: http.StatusBadRequest},
		{name: "zero words", target: "/random-passphrase?words=0", wantStatus: http.StatusBadRequest},
		{name: "bad boolean", target: "/random-passphrase?numbers=maybe", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h.HandlePassphrase, tt.target)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %q)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestHandlePassphraseSegmentCount(t *testing.T) {
	h := newRandomHandler(t)

	rec := get(t, h.HandlePassphrase, "/random-passphrase?words=5&separator=-")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if n := len(strings.Split(rec.Body.String(), "-")); n != 5 {
		t.Errorf("got %d segments, want 5: %q", n, rec.Body.String())
	}
}
