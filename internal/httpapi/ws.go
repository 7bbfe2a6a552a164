package httpapi

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ankit160902/3ioNetra-Spiritual-Companion/internal/engine"
	"github.com/ankit160902/3ioNetra-Spiritual-Companion/pkg/log"
)

// wsTurn is one inbound websocket frame: the same shape as the REST turn
// body, minus the session id, which is fixed for the connection.
type wsTurn struct {
	Message        string `json:"message"`
	Language       string `json:"language,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

type wsError struct {
	Error string `json:"error"`
}

// handleWS upgrades the connection and runs a turn per frame. The session
// comes from the session_id query parameter, or a fresh one is created on
// the first message.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{}
	if s.allowAnyOrigin {
		upgrader.CheckOrigin = func(*http.Request) bool { return true }
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.FromCtx(r.Context()).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sessionID := r.URL.Query().Get("session_id")
	logger := log.FromCtx(r.Context())

	for {
		var in wsTurn
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn().Err(err).Msg("websocket closed unexpectedly")
			}
			return
		}

		res, err := s.engine.HandleTurn(r.Context(), engine.TurnRequest{
			SessionID:      sessionID,
			Message:        in.Message,
			Language:       in.Language,
			IdempotencyKey: in.IdempotencyKey,
		})
		if err != nil {
			logger.Error().Err(err).Msg("websocket turn failed")
			if werr := conn.WriteJSON(wsError{Error: "could not process message"}); werr != nil {
				return
			}
			continue
		}
		sessionID = res.SessionID

		if err := conn.WriteJSON(res); err != nil {
			return
		}
		if res.IsComplete {
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "conversation complete"))
			return
		}
	}
}
