package httpapi

import (
	"bytes"
	"net/http"

	"waitlist-engine/internal/boinord"
	"waitlist-engine/internal/domain"
	"waitlist-engine/internal/poll"
	"waitlist-engine/internal/report"
)

// ApartmentsHandler answers from a live provider fetch on every request.
type ApartmentsHandler struct {
	Fetcher     poll.Fetcher
	Credentials func() (boinord.Credentials, error)
}

func (h ApartmentsHandler) fetch(w http.ResponseWriter, r *http.Request) (*domain.Apartments, bool) {
	creds, err := h.Credentials()
	if err != nil {
		WriteError(w, r, http.StatusServiceUnavailable, "credentials_unavailable", err.Error())
		return nil, false
	}
	apts, err := h.Fetcher.FetchApartments(r.Context(), creds)
	if err != nil {
		writeFetchError(w, r, err)
		return nil, false
	}
	return apts, true
}

func (h ApartmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	apts, ok := h.fetch(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, apts)
}

func (h ApartmentsHandler) Report(w http.ResponseWriter, r *http.Request) {
	apts, ok := h.fetch(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := report.Fprint(&buf, apts); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
