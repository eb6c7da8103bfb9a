package main

import (
	"errors"

	"github.com/accessnav/go-transit/network"
	"github.com/accessnav/go-transit/routing"
	"github.com/accessnav/go-transit/scoring"
)

const DEFAULT_MAX_ROUNDS = 5

//**********************************************************
// navigation requests and responses
//**********************************************************

type TransitRoutingRequest struct {
	Origin         string   `json:"origin"`
	Destinations   []string `json:"destinations"`
	DepartureTime  float64  `json:"departure_time"`
	DisabilityType string   `json:"disability_type"`
	// nil means unset; an explicit 0 limits the search to the origin
	MaxRounds *int `json:"max_rounds"`
}

type RouteCandidate struct {
	Stations              []string `json:"stations"`
	Lines                 []string `json:"lines"`
	ArrivalTime           float64  `json:"arrival_time"`
	Transfers             int      `json:"transfers"`
	MaxTransferDifficulty float64  `json:"max_transfer_difficulty"`
	AvgConvenience        float64  `json:"avg_convenience"`
	AvgCongestion         float64  `json:"avg_congestion"`
	Score                 float64  `json:"score"`
}

type TransitRoutingResponse struct {
	Routes []RouteCandidate `json:"routes"`
}

type FacilityUpdateRequest struct {
	Rows []network.FacilityRow `json:"rows"`
}

type FacilityUpdateResponse struct {
	Rows int `json:"rows"`
}

type StationRequest struct {
	Code string `json:"code"`
}

type StationResponse struct {
	Code          string             `json:"station_cd"`
	Name          string             `json:"name"`
	Line          string             `json:"line"`
	Latitude      float64            `json:"latitude"`
	Longitude     float64            `json:"longitude"`
	Lines         []string           `json:"lines"`
	Accessibility map[string]float64 `json:"accessibility"`
}

//**********************************************************
// navigation handlers
//**********************************************************

func HandleTransitRoutingRequest(req TransitRoutingRequest) Result {
	max_rounds := DEFAULT_MAX_ROUNDS
	if req.MaxRounds != nil {
		max_rounds = *req.MaxRounds
	}

	// routers own a per-query label arena and are not reused across
	// requests
	router := routing.NewRouter(STORE, PARAMS)
	candidates, err := router.FindRoutes(req.Origin, req.Destinations, req.DepartureTime, req.DisabilityType, max_rounds)
	if err != nil {
		var unknown network.UnknownStationError
		if errors.As(err, &unknown) {
			return NotFound(err.Error())
		}
		return BadRequest(err.Error())
	}
	ranked := routing.RankRoutes(candidates, req.DisabilityType)

	routes := make([]RouteCandidate, 0, ranked.Length())
	for _, label := range ranked {
		routes = append(routes, RouteCandidate{
			Stations:              router.ReconstructRoute(label),
			Lines:                 router.ReconstructLines(label),
			ArrivalTime:           label.ArrivalTime,
			Transfers:             label.Transfers,
			MaxTransferDifficulty: label.MaxTransferDifficulty,
			AvgConvenience:        label.AvgConvenience(),
			AvgCongestion:         label.AvgCongestion(),
			Score:                 label.ScoreCache,
		})
	}
	return OK(TransitRoutingResponse{Routes: routes})
}

func HandleFacilityUpdateRequest(req FacilityUpdateRequest) Result {
	if len(req.Rows) == 0 {
		return BadRequest("empty facility batch")
	}
	STORE.UpdateFacilityScores(req.Rows)
	return OK(FacilityUpdateResponse{Rows: len(req.Rows)})
}

func HandleStationRequest(req StationRequest) Result {
	id, err := STORE.GetID(req.Code)
	if err != nil {
		return NotFound(err.Error())
	}
	info := STORE.GetStation(id)

	STORE.RLock()
	accessibility := make(map[string]float64, scoring.DISABILITY_COUNT)
	for i := 0; i < scoring.DISABILITY_COUNT; i++ {
		typ := scoring.DisabilityType(i)
		accessibility[typ.String()] = STORE.GetStationScore(id, typ)
	}
	STORE.RUnlock()

	return OK(StationResponse{
		Code:          info.Code,
		Name:          info.Name,
		Line:          info.Line,
		Latitude:      info.Loc.Lat(),
		Longitude:     info.Loc.Lon(),
		Lines:         STORE.GetLines(id),
		Accessibility: accessibility,
	})
}
