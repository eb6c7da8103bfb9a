package routing

import (
	"github.com/accessnav/go-transit/network"
)

//*******************************************
// label arena
//*******************************************

// LabelIndex addresses a label inside the per-query arena.
// NO_PARENT marks origin labels.
type LabelIndex = int32

const NO_PARENT LabelIndex = -1

// Label is one partial journey state. Labels reference their parent by
// arena index; the chain of parents back to an origin label is the
// journey itself.
type Label struct {
	ParentIndex LabelIndex

	StationID   network.StationID
	CurrentLine string
	Direction   network.Direction

	Transfers             int
	ArrivalTime           float64
	ConvenienceSum        float64
	CongestionSum         float64
	MaxTransferDifficulty float64

	Depth        int
	IsFirstMove  bool
	CreatedRound int

	// set by ranking only
	ScoreCache float64
}

func (self *Label) AvgConvenience() float64 {
	if self.Depth <= 0 {
		return 0.0
	}
	return self.ConvenienceSum / float64(self.Depth)
}

func (self *Label) AvgCongestion() float64 {
	if self.Depth <= 0 {
		return 0.0
	}
	return self.CongestionSum / float64(self.Depth)
}
