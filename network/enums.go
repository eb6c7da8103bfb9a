package network

import "encoding/json"

//*******************************************
// directions
//*******************************************

type Direction byte

const (
	UP      Direction = 0
	DOWN    Direction = 1
	IN      Direction = 2
	OUT     Direction = 3
	UNKNOWN Direction = 255
)

func (self Direction) String() string {
	switch self {
	case UP:
		return "up"
	case DOWN:
		return "down"
	case IN:
		return "in"
	case OUT:
		return "out"
	default:
		return ""
	}
}
func (self Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *Direction) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	*self = DirectionFromString(typ)
	return nil
}

func DirectionFromString(s string) Direction {
	switch s {
	case "up":
		return UP
	case "down":
		return DOWN
	case "in":
		return IN
	case "out":
		return OUT
	default:
		return UNKNOWN
	}
}
