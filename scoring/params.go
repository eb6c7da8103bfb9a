package scoring

//**********************************************************
// model parameters
//**********************************************************

// Params bundles the model constants of the router and the scoring
// tables. The values are part of the model, not tuning knobs; they are
// surfaced here so they live in one place instead of as scattered
// literals.
type Params struct {
	// effective in-train speed in meters per minute
	TransitSpeed float64 `yaml:"transit-speed"`
	// minimum travel time per on-line segment in minutes
	SegmentTimeFloor float64 `yaml:"segment-time-floor"`
	// walking distance at which a transfer reaches maximum
	// distance-difficulty, in meters
	TransferCutoff float64 `yaml:"transfer-cutoff"`
	// slope of the sigmoid bounding facility aggregates
	SigmoidSlope float64 `yaml:"sigmoid-slope"`
	// congestion factor assumed when no table entry exists
	NeutralCongestion float64 `yaml:"neutral-congestion"`
}

func DefaultParams() Params {
	return Params{
		TransitSpeed:      550.0,
		SegmentTimeFloor:  1.0,
		TransferCutoff:    300.0,
		SigmoidSlope:      3.0,
		NeutralCongestion: 0.5,
	}
}
