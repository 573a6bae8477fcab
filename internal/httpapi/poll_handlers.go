package httpapi

import (
	"context"
	"net/http"
	"time"

	"waitlist-engine/internal/poll"
)

const manualPollTimeout = 2 * time.Minute

type PollHandler struct {
	Poller *poll.Poller
}

func (h PollHandler) Status(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Poller.Status())
}

func (h PollHandler) Run(w http.ResponseWriter, r *http.Request) {
	if h.Poller.Busy() {
		WriteJSON(w, http.StatusOK, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	// detached from the request; the result shows up in /poll/status and /events
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), manualPollTimeout)
		defer cancel()
		_, _ = h.Poller.PollOnce(ctx)
	}()

	WriteJSON(w, http.StatusAccepted, map[string]any{"ok": true})
}
