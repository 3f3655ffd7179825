package handler

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// MetaHandler serves the introspection endpoints: root redirect, endpoint
// index, client IP, request headers, and epoch time.
type MetaHandler struct{}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// HandleRoot handles GET / with a permanent redirect to the endpoint index.
func (h *MetaHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/docs", http.StatusPermanentRedirect)
}

// HandleDocs handles GET /docs with a plain-text endpoint index.
func (h *MetaHandler) HandleDocs(w http.ResponseWriter, r *http.Request) {
	writePlain(w, http.StatusOK, `MiscAPI — random and somewhat useful endpoints

GET /flip-coin                 0 or 1
GET /roll-dice                 ?sides=6 (2-1000)
GET /random-number             ?min=1&max=100 (0-1000000000)
GET /random-string             ?length=10 (1-100), ASCII letters
GET /random-uuid               ?count=1 (1-100), newline separated
GET /random-passphrase         ?words=4&numbers=false&symbols=false&separator=-&case=title
GET /ip                        client IP as seen by the server
GET /headers                   request headers as JSON
GET /epoch-time                unix seconds
GET /teapot                    a proxied 418
GET /random-dog                random dog picture metadata
GET /health                    liveness probe
GET /metrics                   prometheus metrics
`)
}

// HandleIP handles GET /ip. The remote address wins unless it is a loopback
// or unspecified address, in which case proxy headers are consulted:
// CF-Connecting-IP first, then the first X-Forwarded-For entry.
func (h *MetaHandler) HandleIP(w http.ResponseWriter, r *http.Request) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if isLocalAddr(host) {
		if cf := r.Header.Get("CF-Connecting-IP"); cf != "" {
			writePlain(w, http.StatusOK, cf)
			return
		}
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			writePlain(w, http.StatusOK, strings.TrimSpace(strings.Split(xff, ",")[0]))
			return
		}
		writePlain(w, http.StatusOK, "")
		return
	}

	writePlain(w, http.StatusOK, host)
}

func isLocalAddr(host string) bool {
	switch host {
	case "", "127.0.0.1", "0.0.0.0", "::1", "localhost":
		return true
	}
	return false
}

// HandleEpochTime handles GET /epoch-time.
func (h *MetaHandler) HandleEpochTime(w http.ResponseWriter, r *http.Request) {
	writePlain(w, http.StatusOK, strconv.FormatInt(time.Now().Unix(), 10))
}

// HandleHeaders handles GET /headers, echoing the request headers as a JSON
// object with lowercased names. Repeated headers are comma-joined.
func (h *MetaHandler) HandleHeaders(w http.ResponseWriter, r *http.Request) {
	headers := make(map[string]string, len(r.Header))
	for name, values := range r.Header {
		headers[strings.ToLower(name)] = strings.Join(values, ", ")
	}
	writeJSON(w, http.StatusOK, headers)
}
