package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"waitlist-engine/internal/boinord"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// writeFetchError maps provider failures onto HTTP statuses.
func writeFetchError(w http.ResponseWriter, r *http.Request, err error) {
	var e *boinord.Error
	if !errors.As(err, &e) {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	switch e.Kind {
	case boinord.KindAuthentication:
		WriteError(w, r, http.StatusUnauthorized, "login_failed", e.Error())
	case boinord.KindTransport:
		if e.StatusCode == 0 {
			WriteError(w, r, http.StatusBadGateway, "upstream_unreachable", e.Error())
			return
		}
		WriteError(w, r, http.StatusBadGateway, "upstream_status", fmt.Sprintf("provider answered HTTP %d", e.StatusCode))
	case boinord.KindSchema:
		WriteError(w, r, http.StatusBadGateway, "upstream_schema", e.Error())
	default:
		WriteError(w, r, http.StatusInternalServerError, "internal_error", e.Error())
	}
}
