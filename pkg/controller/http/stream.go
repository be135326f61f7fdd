package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/intakebox/intakebox/pkg/domain/model"
)

// streamMessages pushes the case timeline to dashboard clients over SSE
func (s *Server) streamMessages(w http.ResponseWriter, r *http.Request) {
	ch, err := s.uc.WatchMessages(r.Context(), reportID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	serveEventStream(w, r, ch)
}

// streamTrackedMessages is the reporter-side counterpart keyed by tracking code
func (s *Server) streamTrackedMessages(w http.ResponseWriter, r *http.Request) {
	ch, err := s.uc.WatchTrackedMessages(r.Context(), trackingCode(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	serveEventStream(w, r, ch)
}

func serveEventStream(w http.ResponseWriter, r *http.Request, ch <-chan *model.Message) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondJSON(w, r, http.StatusInternalServerError,
			envelope{Success: false, Message: "streaming unsupported"})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			data, err := json.Marshal(toMessageView(msg))
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
	}
}
