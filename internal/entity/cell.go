package entity

import (
	"encoding/json"
	"fmt"
)

// Cell is the content of one board slot: empty or one of the two players.
type Cell uint8

const (
	CellEmpty Cell = iota
	PlayerA
	PlayerB
)

const (
	markRed   = "red"
	markBlack = "black"
)

// IsPlayer reports whether the cell holds a piece.
func (that Cell) IsPlayer() bool {
	return that == PlayerA || that == PlayerB
}

// Opponent returns the other player. CellEmpty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return CellEmpty
	}
}

// Mark is the colour name used by clients.
func (that Cell) Mark() string {
	switch that {
	case PlayerA:
		return markRed
	case PlayerB:
		return markBlack
	default:
		return ""
	}
}

func (that Cell) String() string {
	if mark := that.Mark(); mark != "" {
		return mark
	}
	return "empty"
}

func (that Cell) MarshalJSON() ([]byte, error) {
	if !that.IsPlayer() {
		return []byte("null"), nil
	}
	return json.Marshal(that.Mark())
}

func (that *Cell) UnmarshalJSON(data []byte) error {
	var mark *string
	if err := json.Unmarshal(data, &mark); err != nil {
		return fmt.Errorf("failed to unmarshal cell: %w", err)
	}

	switch {
	case mark == nil || *mark == "":
		*that = CellEmpty
	case *mark == markRed:
		*that = PlayerA
	case *mark == markBlack:
		*that = PlayerB
	default:
		return fmt.Errorf("unknown cell mark %q", *mark)
	}

	return nil
}
