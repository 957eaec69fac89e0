package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/engine"
	"github.com/dmitrijs2005/listbot/internal/models"
	"github.com/gorilla/mux"
)

// commandResponse is the webhook reply. OK is false when the command was
// rejected or failed; Message then explains why.
type commandResponse struct {
	OK      bool          `json:"ok"`
	Message string        `json:"message,omitempty"`
	Pages   []models.Page `json:"pages,omitempty"`
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// maxCommandBytes bounds a command body. Elements are at most 1024 runes,
// so a multiadd of many elements still fits comfortably.
const maxCommandBytes = 64 << 10

func (s *HTTPServer) executeCommand(w http.ResponseWriter, r *http.Request) {
	var cmd engine.Command
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCommandBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cmd); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "command too large")
			return
		}
		writeError(w, http.StatusBadRequest, "malformed command")
		return
	}
	if cmd.Owner <= 0 {
		writeError(w, http.StatusBadRequest, "owner is required")
		return
	}

	reply := s.exec.Execute(r.Context(), cmd)
	s.logger.Debug(r.Context(), "command handled",
		"gateway", gatewayFromContext(r.Context()),
		"owner", cmd.Owner,
		"function", cmd.Function,
		"ok", reply.Err == nil,
	)

	// user errors and internal failures are both answered with 200: the
	// gateway only relays the message
	writeJSON(w, http.StatusOK, commandResponse{
		OK:      reply.Err == nil,
		Message: reply.Message,
		Pages:   reply.Pages,
	})
}

func (s *HTTPServer) listSummaries(w http.ResponseWriter, r *http.Request) {
	owner, err := strconv.ParseInt(mux.Vars(r)["ownerID"], 10, 64)
	if err != nil || owner <= 0 {
		writeError(w, http.StatusBadRequest, "invalid owner id")
		return
	}

	summaries, err := s.exec.Summaries(r.Context(), owner)
	if err != nil {
		s.logger.Error(r.Context(), "summaries failed", "owner", owner, "error", err)
		writeError(w, http.StatusInternalServerError, common.ErrorInternal.Error())
		return
	}
	if summaries == nil {
		summaries = []models.Summary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}
