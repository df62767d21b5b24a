package core

// PlayerID identifies one of the two seats in a match.
type PlayerID string

const (
	PlayerX PlayerID = "X" // Always moves first
	PlayerO PlayerID = "O"
)

// Players lists both seats in turn order.
var Players = [2]PlayerID{PlayerX, PlayerO}

// Other returns the opposing seat.
func (p PlayerID) Other() PlayerID {
	if p == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Valid reports whether p is one of the two seats.
func (p PlayerID) Valid() bool {
	return p == PlayerX || p == PlayerO
}

func (p PlayerID) String() string {
	return string(p)
}
