package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/miscapi/miscapi-go/internal/model"
)

const (
	teapotImageURL = "https://http.cat/images/418.jpg"
	dogAPIURL      = "https://dog.ceo/api/breeds/image/random"
)

// FetchHandler serves the endpoints that proxy third-party APIs. These sit
// outside the core correctness contract: failures map to 5xx responses and
// are never retried.
type FetchHandler struct {
	client    *http.Client
	teapotURL string
	dogURL    string
}

// NewFetchHandler creates a FetchHandler using the given client for all
// outbound calls. The client's timeout is the only timeout policy applied.
func NewFetchHandler(client *http.Client) *FetchHandler {
	return &FetchHandler{
		client:    client,
		teapotURL: teapotImageURL,
		dogURL:    dogAPIURL,
	}
}

// HandleTeapot handles GET /teapot: proxies the http.cat 418 image and
// serves it with status 418.
func (h *FetchHandler) HandleTeapot(w http.ResponseWriter, r *http.Request) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, h.teapotURL, nil)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		slog.Warn("teapot image fetch failed", "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse("upstream image fetch failed"))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("teapot image fetch failed", "status", resp.StatusCode)
		writeJSON(w, http.StatusBadGateway, errorResponse("upstream image fetch failed"))
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusTeapot)
	io.Copy(w, resp.Body)
}

// HandleRandomDog handles GET /random-dog: fetches a random dog image URL
// from dog.ceo and reports the breed parsed from the URL path. Any upstream
// failure yields a 500 with null fields, matching the endpoint's contract.
func (h *FetchHandler) HandleRandomDog(w http.ResponseWriter, r *http.Request) {
	fail := func(reason string, attrs ...any) {
		slog.Warn("random dog lookup failed: "+reason, attrs...)
		writeJSON(w, http.StatusInternalServerError, model.DogImage{})
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, h.dogURL, nil)
	if err != nil {
		fail("build request", "error", err)
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		fail("fetch", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fail("status", "status", resp.StatusCode)
		return
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		fail("decode", "error", err)
		return
	}

	breed := breedFromURL(body.Message)
	if body.Message == "" || breed == "" {
		fail("parse", "url", body.Message)
		return
	}

	writeJSON(w, http.StatusOK, model.DogImage{Breed: &breed, URL: &body.Message})
}

// breedFromURL extracts the breed segment from a dog.ceo image URL of the
// form https://images.dog.ceo/breeds/<breed>/<file>.
func breedFromURL(u string) string {
	parts := strings.Split(u, "/")
	if len(parts) < 5 {
		return ""
	}
	return parts[4]
}
