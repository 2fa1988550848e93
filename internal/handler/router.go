package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/ugaemi/chatnoir-server/internal/session"
	"github.com/ugaemi/chatnoir-server/internal/ws"
)

// Router dispatches incoming messages to the appropriate handler.
type Router struct {
	game *GameHandler
}

// NewRouter creates a new message router.
func NewRouter(sm *session.Manager) *Router {
	return &Router{
		game: NewGameHandler(sm),
	}
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var msg ws.Message
	if err := json.Unmarshal(cm.Data, &msg); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewErrorMessage("invalid message format"))
		return
	}

	switch msg.Type {
	case ws.TypeNewGame:
		r.game.HandleNewGame(cm.Client, msg)
	case ws.TypeSubmitMove:
		r.game.HandleSubmitMove(cm.Client, msg)
	case ws.TypeReset:
		r.game.HandleReset(cm.Client, msg)
	case ws.TypeQueryStatus:
		r.game.HandleQueryStatus(cm.Client, msg)
	case ws.TypeGetTitle:
		r.game.HandleGetTitle(cm.Client, msg)
	case ws.TypeWatchGame:
		r.game.HandleWatchGame(cm.Client, msg)
	case ws.TypeLeaveGame:
		r.game.HandleLeaveGame(cm.Client, msg)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewErrorMessage("unknown message type: " + msg.Type))
	}
}

// HandleDisconnect handles client disconnection.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.game.HandleDisconnect(client)
}
