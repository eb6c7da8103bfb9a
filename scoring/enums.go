package scoring

import "encoding/json"

//**********************************************************
// disability profiles
//**********************************************************

type DisabilityType byte

const (
	PHY DisabilityType = 0
	VIS DisabilityType = 1
	AUD DisabilityType = 2
	ELD DisabilityType = 3
)

// DISABILITY_COUNT sizes the per-station accessibility vectors.
const DISABILITY_COUNT = 4

func (self DisabilityType) String() string {
	switch self {
	case PHY:
		return "PHY"
	case VIS:
		return "VIS"
	case AUD:
		return "AUD"
	case ELD:
		return "ELD"
	default:
		panic("unknown disability type")
	}
}
func (self DisabilityType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *DisabilityType) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	*self = DisabilityFromString(typ)
	return nil
}

// DisabilityFromString maps unrecognized profiles to PHY. This is the
// documented fallback, not an error.
func DisabilityFromString(s string) DisabilityType {
	switch s {
	case "PHY":
		return PHY
	case "VIS":
		return VIS
	case "AUD":
		return AUD
	case "ELD":
		return ELD
	default:
		return PHY
	}
}
