package game

import "strings"

// Direction names one of the four cardinal exits a room may have.
type Direction string

const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
)

// Short returns the single-letter form used in exit listings.
func (d Direction) Short() string {
	if d == "" {
		return ""
	}
	return string(d)[:1]
}

func (d Direction) String() string {
	return string(d)
}

// ParseDirection resolves long and single-letter direction tokens.
func ParseDirection(token string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "n", "north":
		return North, true
	case "e", "east":
		return East, true
	case "s", "south":
		return South, true
	case "w", "west":
		return West, true
	}
	return "", false
}
