package models

import (
	"encoding/json"
	"fmt"
)

// Client → server message types.
const (
	TypeCreate = "create"
	TypeJoin   = "join"
	TypeMove   = "move"
	TypeReady  = "ready"
	TypeReset  = "reset"
)

// Server → client message types.
const (
	TypeCreated  = "created"
	TypeJoined   = "joined"
	TypeError    = "error"
	TypeState    = "state"
	TypeStart    = "start"
	TypeGameOver = "gameover"
)

type CreateMessage struct{}

type JoinMessage struct {
	Code string `json:"code"`
}

type MoveMessage struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

type ReadyMessage struct{}

type ResetMessage struct{}

type envelope struct {
	Type string `json:"type"`
}

// DecodeClientMessage parses a raw frame into one of the typed client
// messages (CreateMessage, JoinMessage, MoveMessage, ReadyMessage,
// ResetMessage). Malformed frames and unknown types return an error so
// the caller can drop them without replying.
func DecodeClientMessage(raw []byte) (any, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}

	switch env.Type {
	case TypeCreate:
		return CreateMessage{}, nil
	case TypeJoin:
		var msg JoinMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, err
		}
		if msg.Code == "" {
			return nil, fmt.Errorf("join message without code")
		}
		return msg, nil
	case TypeMove:
		var msg MoveMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, err
		}
		return msg, nil
	case TypeReady:
		return ReadyMessage{}, nil
	case TypeReset:
		return ResetMessage{}, nil
	default:
		return nil, fmt.Errorf("unknown message type %q", env.Type)
	}
}

type CreatedMessage struct {
	Type string `json:"type"`
	Code string `json:"code"`
	ID   string `json:"id"`
}

type JoinedMessage struct {
	Type string `json:"type"`
	Code string `json:"code"`
	ID   string `json:"id"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type StartMessage struct {
	Type string `json:"type"`
}

// RadiologistState is the snapshot view of the wandering hazard.
type RadiologistState struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// StretcherState is the snapshot view of the active sweep hazard.
type StretcherState struct {
	X  int `json:"x"`
	Y  int `json:"y"`
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// StretcherWarningState announces the door and direction of an
// incoming stretcher before it enters the grid.
type StretcherWarningState struct {
	X  int `json:"x"`
	Y  int `json:"y"`
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// StateMessage is the full room snapshot broadcast after every
// state-affecting event.
type StateMessage struct {
	Type             string                  `json:"type"`
	Players          map[string]*PlayerState `json:"players"`
	Products         []Position              `json:"products"`
	Holes            []Position              `json:"holes"`
	Radiologist      *RadiologistState       `json:"radiologist"`
	Stretcher        *StretcherState         `json:"stretcher"`
	StretcherWarning *StretcherWarningState  `json:"stretcherWarning"`
	Bonus            *Position               `json:"bonus,omitempty"`
	Required         int                     `json:"required"`
	Started          bool                    `json:"started"`
}

type GameOverMessage struct {
	Type     string         `json:"type"`
	WinnerID string         `json:"winnerId"`
	LoserID  string         `json:"loserId"`
	Tie      bool           `json:"tie"`
	Products map[string]int `json:"products"`
}
