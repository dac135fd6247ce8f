package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/mapleleafu/wardrush/wardrush-backend/game"
	"github.com/mapleleafu/wardrush/wardrush-backend/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler holds the room registry; one instance is wired into the
// router at startup.
type Handler struct {
	registry *game.Registry
}

func NewHandler(registry *game.Registry) *Handler {
	return &Handler{registry: registry}
}

// Connection wraps a WebSocket with a buffered send channel so room
// broadcasts never block on a slow socket.
type Connection struct {
	ws   *websocket.Conn
	send chan []byte
}

// Send queues a message for the write pump. A full channel drops the
// message: delivery is best effort.
func (c *Connection) Send(data []byte) error {
	select {
	case c.send <- data:
		return nil
	default:
		return websocket.ErrCloseSent
	}
}

func (c *Connection) Close() error {
	return c.ws.Close()
}

func (c *Connection) writePump() {
	defer c.ws.Close()
	for message := range c.send {
		if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("error writing message: %v", err)
			return
		}
	}
}

// session is the per-connection view of where the client is attached.
type session struct {
	room     *game.Room
	playerID string
}

func (h *Handler) WsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}

	connection := &Connection{ws: conn, send: make(chan []byte, 256)}
	log.Println("New client connected")

	go connection.writePump()
	h.readPump(connection)
}

func (h *Handler) readPump(c *Connection) {
	sess := &session{}

	defer func() {
		if sess.room != nil {
			h.registry.Leave(sess.room, sess.playerID)
			log.Printf("Client disconnected id=%s room=%s", sess.playerID, sess.room.Code)
		}
		c.ws.Close()
		// Leave already detached this socket from its room, so nothing
		// can queue to send anymore; closing stops the write pump.
		close(c.send)
	}()

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		h.processMessage(c, sess, message)
	}
}

// processMessage dispatches one frame. Malformed frames and unknown
// types are dropped without a reply.
func (h *Handler) processMessage(c game.Conn, sess *session, raw []byte) {
	msg, err := models.DecodeClientMessage(raw)
	if err != nil {
		log.Printf("Dropping client message: %v", err)
		return
	}

	switch m := msg.(type) {
	case models.CreateMessage:
		if sess.room != nil {
			return
		}
		code, id, room := h.registry.Create(c)
		sess.room = room
		sess.playerID = id
		game.SendTo(c, models.CreatedMessage{Type: models.TypeCreated, Code: code, ID: id})
		log.Printf("Room created: %s, id=%s", code, id)

	case models.JoinMessage:
		if sess.room != nil {
			return
		}
		id, room, err := h.registry.Join(m.Code, c)
		if err != nil {
			game.SendTo(c, models.ErrorMessage{Type: models.TypeError, Message: joinErrorMessage(err)})
			return
		}
		sess.room = room
		sess.playerID = id
		game.SendTo(c, models.JoinedMessage{Type: models.TypeJoined, Code: m.Code, ID: id})
		room.BroadcastState()
		log.Printf("Client joined room %s, id=%s", m.Code, id)

	case models.MoveMessage:
		if sess.room == nil {
			return
		}
		sess.room.Move(sess.playerID, m.Dx, m.Dy)

	case models.ReadyMessage:
		if sess.room == nil {
			return
		}
		sess.room.Ready(sess.playerID)

	case models.ResetMessage:
		if sess.room == nil {
			return
		}
		sess.room.Reset()
	}
}

func joinErrorMessage(err error) string {
	switch err {
	case game.ErrRoomFull:
		return "Room is full"
	default:
		return "Invalid room code"
	}
}
