package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/ugaemi/chatnoir-server/internal/board"
	"github.com/ugaemi/chatnoir-server/internal/game"
	"github.com/ugaemi/chatnoir-server/internal/session"
	"github.com/ugaemi/chatnoir-server/internal/ws"
)

// seat links a client to the session it plays or watches.
type seat struct {
	client    *ws.Client
	session   *session.Session
	subID     int
	spectator bool
}

// GameHandler handles game messages. Each playing client owns one session
// in which both the cat and the owner move from the same screen.
type GameHandler struct {
	sm    *session.Manager
	seats map[string]*seat // client ID -> seat
	mu    sync.RWMutex
}

// NewGameHandler creates a new game handler.
func NewGameHandler(sm *session.Manager) *GameHandler {
	return &GameHandler{
		sm:    sm,
		seats: make(map[string]*seat),
	}
}

type gameStartedResponse struct {
	SessionID string        `json:"session_id"`
	Code      string        `json:"code"`
	Spectator bool          `json:"spectator"`
	Game      game.Snapshot `json:"game"`
}

type submitMoveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type moveRejectedResponse struct {
	Kind    string      `json:"kind"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Target  board.Coord `json:"target"`
}

type watchGameRequest struct {
	Code string `json:"code"`
}

type titleResponse struct {
	Title string `json:"title"`
}

type gameClosedResponse struct {
	SessionID string `json:"session_id"`
	Code      string `json:"code"`
}

// HandleNewGame starts a fresh session for the client, leaving any game it
// was playing or watching.
func (h *GameHandler) HandleNewGame(client *ws.Client, _ ws.Message) {
	h.leave(client)

	s := h.sm.CreateSession()
	subID := s.Subscribe(eventForwarder{client: client})
	h.setSeat(client.ID, &seat{client: client, session: s, subID: subID})

	snap := s.Start()
	client.Reply(ws.TypeGameStarted, gameStartedResponse{
		SessionID: s.ID,
		Code:      s.Code,
		Game:      snap,
	})

	slog.Info("client started game", "client", client.ID, "session", s.ID)
}

// HandleSubmitMove applies a move or placement for the side whose turn it is.
func (h *GameHandler) HandleSubmitMove(client *ws.Client, msg ws.Message) {
	var req submitMoveRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Row == nil || req.Col == nil {
		client.SendMessage(ws.NewErrorMessage("row and col are required"))
		return
	}

	st := h.playerSeat(client)
	if st == nil {
		return
	}

	err := st.session.Submit(*req.Row, *req.Col)
	if err == nil {
		return
	}

	var moveErr *game.MoveError
	if !errors.As(err, &moveErr) {
		slog.Error("move failed", "client", client.ID, "error", err)
		client.SendMessage(ws.NewErrorMessage("move failed"))
		return
	}

	title, text := game.Describe(moveErr)
	client.Reply(ws.TypeMoveRejected, moveRejectedResponse{
		Kind:    game.Kind(moveErr),
		Title:   title,
		Message: text,
		Target:  moveErr.Target,
	})
}

// HandleReset deals a new game in the client's session. Clients send it
// after showing a finished game, when the players choose to play again.
func (h *GameHandler) HandleReset(client *ws.Client, _ ws.Message) {
	st := h.playerSeat(client)
	if st == nil {
		return
	}
	st.session.Reset()
}

// HandleQueryStatus replies with whose turn it is or who won.
func (h *GameHandler) HandleQueryStatus(client *ws.Client, _ ws.Message) {
	st := h.getSeat(client.ID)
	if st == nil {
		client.SendMessage(ws.NewErrorMessage("not in a game"))
		return
	}
	client.Reply(ws.TypeStatus, st.session.Status())
}

// HandleGetTitle replies with the display name of the game.
func (h *GameHandler) HandleGetTitle(client *ws.Client, _ ws.Message) {
	client.Reply(ws.TypeTitle, titleResponse{Title: game.Title})
}

// HandleWatchGame subscribes the client to another client's game.
func (h *GameHandler) HandleWatchGame(client *ws.Client, msg ws.Message) {
	var req watchGameRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil || req.Code == "" {
		client.SendMessage(ws.NewErrorMessage("code is required"))
		return
	}

	s := h.sm.FindByCode(req.Code)
	if s == nil {
		client.SendMessage(ws.NewErrorMessage("game not found"))
		return
	}

	h.leave(client)
	subID := s.Subscribe(eventForwarder{client: client})
	h.setSeat(client.ID, &seat{client: client, session: s, subID: subID, spectator: true})

	client.Reply(ws.TypeGameStarted, gameStartedResponse{
		SessionID: s.ID,
		Code:      s.Code,
		Spectator: true,
		Game:      s.Snapshot(),
	})

	slog.Info("client watching game", "client", client.ID, "session", s.ID)
}

// HandleLeaveGame handles a client leaving its game.
func (h *GameHandler) HandleLeaveGame(client *ws.Client, _ ws.Message) {
	h.leave(client)
}

// HandleDisconnect handles client disconnection.
func (h *GameHandler) HandleDisconnect(client *ws.Client) {
	h.leave(client)
}

// leave releases the client's seat. When the player leaves, the session is
// removed and everyone watching it is unseated and told the game closed.
func (h *GameHandler) leave(client *ws.Client) {
	h.mu.Lock()
	st, ok := h.seats[client.ID]
	delete(h.seats, client.ID)
	var watchers []*seat
	if ok && !st.spectator {
		for id, other := range h.seats {
			if other.session == st.session {
				watchers = append(watchers, other)
				delete(h.seats, id)
			}
		}
	}
	h.mu.Unlock()
	if !ok {
		return
	}

	st.session.Unsubscribe(st.subID)
	slog.Info("client left game", "client", client.ID, "session", st.session.ID)
	if st.spectator {
		return
	}

	h.sm.RemoveSession(st.session.ID)
	closed := gameClosedResponse{SessionID: st.session.ID, Code: st.session.Code}
	for _, w := range watchers {
		st.session.Unsubscribe(w.subID)
		w.client.Reply(ws.TypeGameClosed, closed)
	}
	if len(watchers) > 0 {
		slog.Info("spectators unseated", "session", st.session.ID, "count", len(watchers))
	}
}

// playerSeat returns the client's seat if it may move, and tells the client
// why not otherwise.
func (h *GameHandler) playerSeat(client *ws.Client) *seat {
	st := h.getSeat(client.ID)
	switch {
	case st == nil:
		client.SendMessage(ws.NewErrorMessage("not in a game"))
		return nil
	case st.spectator:
		client.SendMessage(ws.NewErrorMessage("spectators cannot move"))
		return nil
	}
	return st
}

func (h *GameHandler) getSeat(clientID string) *seat {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.seats[clientID]
}

func (h *GameHandler) setSeat(clientID string, st *seat) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seats[clientID] = st
}

// eventForwarder turns engine events into client messages.
type eventForwarder struct {
	client *ws.Client
}

func (f eventForwarder) OnEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventCatPlaced:
		f.client.Reply(ws.TypeCatPlaced, ev)
	case game.EventBlockerPlaced:
		f.client.Reply(ws.TypeBlockerPlaced, ev)
	case game.EventCatMoved:
		f.client.Reply(ws.TypeCatMoved, ev)
	case game.EventReset:
		f.client.SendMessage(ws.Message{Type: ws.TypeGameReset})
	case game.EventStatusChanged:
		f.client.SendMessage(ws.Message{Type: ws.TypeStatusChanged})
	}
}
