package network

import (
	"github.com/paulmach/orb"

	"github.com/accessnav/go-transit/scoring"
	. "github.com/accessnav/go-transit/util"
)

//*******************************************
// network structs
//*******************************************

// StationID is the dense internal station identifier. External
// callers address stations by their opaque code string.
type StationID uint16

type StationInfo struct {
	ID   StationID `json:"id"`
	Code string    `json:"station_cd"`
	Name string    `json:"name"`
	Line string    `json:"line"`
	// lon/lat
	Loc orb.Point `json:"loc"`
}

// DirectionLists holds the stations reachable from one station on one
// line without transfer, in physical traversal order per direction.
type DirectionLists struct {
	Up   List[StationID]
	Down List[StationID]
}

type TransferData struct {
	// walking distance in meters
	Distance float64
}

// FacilityRow is one batch entry of an accessibility update: raw
// facility counts applied to every listed station code.
type FacilityRow struct {
	StationCodes []string `json:"station_cd_list"`
	scoring.FacilityCounts
}

//*******************************************
// errors
//*******************************************

type UnknownStationError struct {
	Code string
}

func (self UnknownStationError) Error() string {
	return "unknown station code: " + self.Code
}
