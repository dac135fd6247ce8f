package models

// Position is a cell on the room grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PlayerState is the authoritative per-player state inside a room.
// It is mutated only while holding the owning room's lock and is
// serialized as-is into state snapshots.
type PlayerState struct {
	X              int  `json:"x"`
	Y              int  `json:"y"`
	Lives          int  `json:"lives"`
	Collected      int  `json:"collected"`
	CollectedVisit int  `json:"collectedVisit"`
	Ready          bool `json:"ready"`
	BonusActive    bool `json:"bonusActive,omitempty"`
}
