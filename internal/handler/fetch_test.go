package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/miscapi/miscapi-go/internal/model"
)

func newFetchHandler(upstream string) *FetchHandler {
	h := NewFetchHandler(&http.Client{Timeout: 2 * time.Second})
	h.teapotURL = upstream
	h.dogURL = upstream
	return h
}

func TestHandleTeapot(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("\xff\xd8fake-jpeg"))
	}))
	defer upstream.Close()

	rec := get(t, newFetchHandler(upstream.URL).HandleTeapot, "/teapot")

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want 418", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("Content-Type = %q, want image/jpeg", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty image body")
	}
}

func TestHandleTeapotUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	rec := get(t, newFetchHandler(upstream.URL).HandleTeapot, "/teapot")
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestHandleTeapotUpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(nil)
	upstream.Close() // connection refused from here on

	rec := get(t, newFetchHandler(upstream.URL).HandleTeapot, "/teapot")
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestHandleRandomDog(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"message": "https://images.dog.ceo/breeds/hound-afghan/n02088094_1003.jpg",
			"status":  "success",
		})
	}))
	defer upstream.Close()

	rec := get(t, newFetchHandler(upstream.URL).HandleRandomDog, "/random-dog")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", rec.Code, rec.Body.String())
	}

	var got model.DogImage
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if got.Breed == nil || *got.Breed != "hound-afghan" {
		t.Errorf("breed = %v, want hound-afghan", got.Breed)
	}
	if got.URL == nil || *got.URL == "" {
		t.Error("url missing in response")
	}
}

func TestHandleRandomDogUpstreamFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "upstream 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
		{
			name: "unparsable image url",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{"message": "nope"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := httptest.NewServer(tt.handler)
			defer upstream.Close()

			rec := get(t, newFetchHandler(upstream.URL).HandleRandomDog, "/random-dog")
			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", rec.Code)
			}

			var got model.DogImage
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if got.Breed != nil || got.URL != nil {
				t.Errorf("failure response should carry null fields, got %+v", got)
			}
		})
	}
}
