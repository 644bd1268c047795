package httpapi

import (
	"net/http"

	"github.com/1broseidon/wmhttp/internal/platform"
)

func (s *Server) handleListWindows(w http.ResponseWriter, r *http.Request) {
	req := requestFrom(r.Context())

	var windows []platform.Window
	var err error
	s.serialized(func() { windows, err = s.backend.ListWindows() })
	if err != nil {
		s.logger.Error("failed to list windows", "error", err)
		s.respond(w, req, http.StatusInternalServerError, nil)
		return
	}
	if windows == nil {
		windows = []platform.Window{}
	}
	s.respond(w, req, http.StatusOK, windows)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	req := requestFrom(r.Context())

	var state platform.DesktopState
	var err error
	s.serialized(func() { state, err = s.backend.CurrentState() })
	if err != nil {
		s.logger.Error("failed to read desktop state", "error", err)
		s.respond(w, req, http.StatusInternalServerError, nil)
		return
	}
	s.respond(w, req, http.StatusOK, state)
}

// handleMoveWindow answers 200 whether or not the window exists. Only a body
// that is not an object, an id that is not a number, or a mistyped field is
// rejected.
func (s *Server) handleMoveWindow(w http.ResponseWriter, r *http.Request) {
	req := requestFrom(r.Context())

	if !req.Body.IsObject() {
		s.logger.Debug("move-window body is not a JSON object")
		s.respond(w, req, http.StatusBadRequest, nil)
		return
	}
	var body moveWindowBody
	if err := req.Body.Decode(&body); err != nil {
		s.logger.Debug("move-window body rejected", "error", err)
		s.respond(w, req, http.StatusBadRequest, nil)
		return
	}
	cmd, ok, err := body.command()
	if err != nil {
		s.logger.Debug("move-window body rejected", "error", err)
		s.respond(w, req, http.StatusBadRequest, nil)
		return
	}
	if !ok {
		s.logger.Debug("move-window id matches no window", "id", string(body.ID))
		s.respond(w, req, http.StatusOK, nil)
		return
	}

	var (
		found  bool
		failed []platform.StepError
	)
	s.serialized(func() { found, failed, err = platform.ApplyMove(s.backend, cmd) })
	if err != nil {
		s.logger.Error("move-window lookup failed", "window_id", cmd.ID, "error", err)
		s.respond(w, req, http.StatusInternalServerError, nil)
		return
	}

	if !found {
		s.logger.Debug("move-window target not found", "window_id", cmd.ID)
	}
	for _, f := range failed {
		s.logger.Warn("move-window step failed", "window_id", cmd.ID, "step", f.Step, "error", f.Err)
	}
	s.respond(w, req, http.StatusOK, nil)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.respond(w, requestFrom(r.Context()), http.StatusNotFound, nil)
}

// serialized runs fn while holding the backend lock.
func (s *Server) serialized(fn func()) {
	s.backendMu.Lock()
	defer s.backendMu.Unlock()
	fn()
}
