package game

import "github.com/mapleleafu/wardrush/wardrush-backend/models"

// evaluateGameOver checks the terminal conditions and, when one holds,
// broadcasts the gameover event and tears the room down. Returns true
// when the room no longer exists. Callers hold mu.
//
// Two players, both at 0 lives: higher lifetime collected wins, equal
// counts tie. Exactly one at 0: outright loss. A lone player at 0 (the
// other already left) loses with no winner.
func (r *Room) evaluateGameOver() bool {
	var dead []string
	for id, p := range r.players {
		if p.Lives == 0 {
			dead = append(dead, id)
		}
	}
	if len(dead) == 0 {
		return false
	}

	msg := models.GameOverMessage{
		Type:     models.TypeGameOver,
		Products: make(map[string]int, len(r.players)),
	}
	for id, p := range r.players {
		msg.Products[id] = p.Collected
	}

	switch {
	case len(r.players) == 2 && len(dead) == 2:
		a, b := dead[0], dead[1]
		ca, cb := r.players[a].Collected, r.players[b].Collected
		switch {
		case ca == cb:
			msg.Tie = true
			msg.WinnerID = a
			msg.LoserID = b
		case ca > cb:
			msg.WinnerID = a
			msg.LoserID = b
		default:
			msg.WinnerID = b
			msg.LoserID = a
		}
	case len(r.players) == 2:
		msg.LoserID = dead[0]
		for id := range r.players {
			if id != dead[0] {
				msg.WinnerID = id
			}
		}
	case len(r.players) == 1:
		msg.LoserID = dead[0]
	default:
		return false
	}

	r.broadcastEvent(msg)
	r.teardown()
	return true
}
