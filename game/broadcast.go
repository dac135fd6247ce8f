package game

import (
	"encoding/json"
	"log"

	"github.com/mapleleafu/wardrush/wardrush-backend/models"
)

// buildSnapshot assembles the full-state message. Callers hold mu.
func (r *Room) buildSnapshot() models.StateMessage {
	msg := models.StateMessage{
		Type:     models.TypeState,
		Players:  r.players,
		Products: r.products,
		Holes:    r.holes,
		Bonus:    r.bonus,
		Required: r.required,
		Started:  r.started,
	}
	if msg.Products == nil {
		msg.Products = []models.Position{}
	}
	if msg.Holes == nil {
		msg.Holes = []models.Position{}
	}
	if r.radiologist != nil {
		msg.Radiologist = &models.RadiologistState{X: r.radiologist.pos.X, Y: r.radiologist.pos.Y}
	}
	if r.stretcher != nil {
		msg.Stretcher = &models.StretcherState{
			X:  r.stretcher.pos.X,
			Y:  r.stretcher.pos.Y,
			Dx: r.stretcher.dir.X,
			Dy: r.stretcher.dir.Y,
		}
	}
	msg.StretcherWarning = r.warning
	return msg
}

// broadcastState sends a snapshot to every socket in join order.
// Callers hold mu.
func (r *Room) broadcastState() {
	r.broadcastEvent(r.buildSnapshot())
}

// broadcastEvent sends a typed event to every socket. Delivery is best
// effort: a socket that cannot take the message is skipped, never
// retried. Callers hold mu.
func (r *Room) broadcastEvent(msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Room %s: failed to marshal event: %v", r.Code, err)
		return
	}
	for _, id := range r.order {
		if c, ok := r.conns[id]; ok {
			_ = c.Send(data)
		}
	}
}

// SendTo delivers a typed event to a single socket, best effort.
func SendTo(c Conn, msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("failed to marshal event: %v", err)
		return
	}
	_ = c.Send(data)
}
