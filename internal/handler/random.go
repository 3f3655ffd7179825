package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/miscapi/miscapi-go/internal/passphrase"
	"github.com/miscapi/miscapi-go/internal/random"
	"github.com/miscapi/miscapi-go/internal/service"
)

// RandomHandler serves the random-value endpoints.
type RandomHandler struct {
	service *service.RandomService
}

// NewRandomHandler creates a new RandomHandler.
func NewRandomHandler(svc *service.RandomService) *RandomHandler {
	return &RandomHandler{service: svc}
}

// HandleFlipCoin handles GET /flip-coin.
func (h *RandomHandler) HandleFlipCoin(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.FlipCoin()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writePlain(w, http.StatusOK, strconv.Itoa(n))
}

// HandleRollDice handles GET /roll-dice?sides=6.
func (h *RandomHandler) HandleRollDice(w http.ResponseWriter, r *http.Request) {
	sides, err := queryInt(r, "sides", 6, 2, 1000)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	n, err := h.service.RollDice(sides)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writePlain(w, http.StatusOK, strconv.Itoa(n))
}

// HandleRandomNumber handles GET /random-number?min=1&max=100.
func (h *RandomHandler) HandleRandomNumber(w http.ResponseWriter, r *http.Request) {
	min, err := queryInt(r, "min", 1, 0, 1_000_000_000)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	max, err := queryInt(r, "max", 100, 0, 1_000_000_000)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	n, err := h.service.NumberInRange(min, max)
	if err != nil {
		if errors.Is(err, random.ErrInvalidRange) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writePlain(w, http.StatusOK, strconv.Itoa(n))
}

// HandleRandomString handles GET /random-string?length=10.
func (h *RandomHandler) HandleRandomString(w http.ResponseWriter, r *http.Request) {
	length, err := queryInt(r, "length", 10, 1, 100)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	s, err := h.service.LetterString(length)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writePlain(w, http.StatusOK, s)
}

// HandleUUID handles GET /random-uuid?count=1. UUIDs are newline-joined.
func (h *RandomHandler) HandleUUID(w http.ResponseWriter, r *http.Request) {
	count, err := queryInt(r, "count", 1, 1, 100)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	writePlain(w, http.StatusOK, strings.Join(h.service.UUIDs(count), "\n"))
}

// HandlePassphrase handles GET /random-passphrase with words, numbers,
// symbols, separator, and case parameters. Unknown case values are passed
// through unchanged: the composer treats them as title case.
func (h *RandomHandler) HandlePassphrase(w http.ResponseWriter, r *http.Request) {
	words, err := queryInt(r, "words", 4, 1, 20)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	numbers, err := queryBool(r, "numbers", false)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	symbols, err := queryBool(r, "symbols", false)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	separator := "-"
	if r.URL.Query().Has("separator") {
		separator = r.URL.Query().Get("separator")
	}
	if len(separator) > 3 {
		writeJSON(w, http.StatusBadRequest, errorResponse("separator must be at most 3 characters"))
		return
	}

	caseMode := passphrase.CaseMode(r.URL.Query().Get("case"))
	if caseMode == "" {
		caseMode = passphrase.CaseTitle
	}

	result, err := h.service.Passphrase(passphrase.Config{
		Words:         words,
		IncludeDigit:  numbers,
		IncludeSymbol: symbols,
		Separator:     separator,
		Case:          caseMode,
	})
	if err != nil {
		if errors.Is(err, random.ErrSampleTooLarge) || errors.Is(err, passphrase.ErrNoCandidateSymbols) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writePlain(w, http.StatusOK, result)
}
