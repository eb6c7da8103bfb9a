package routing

import (
	"sync"
	"testing"
	"time"

	"github.com/accessnav/go-transit/network"
	"github.com/accessnav/go-transit/scoring"
	. "github.com/accessnav/go-transit/util"
)

// test network:
//
//	L1: A01 -- A02 -- A03   (~111m per hop, every segment floors to 1 min)
//	L2:        A02 -- B05
//
// with a 60m transfer at A02 between L1 and L2.
func build_test_source() network.SourceData {
	stations := NewDict[string, network.SourceStation](4)
	stations["A01"] = network.SourceStation{Name: "Alpha", Line: "L1", Latitude: 37.000, Longitude: 127.000}
	stations["A02"] = network.SourceStation{Name: "Bravo", Line: "L1", Latitude: 37.001, Longitude: 127.000}
	stations["A03"] = network.SourceStation{Name: "Charlie", Line: "L1", Latitude: 37.002, Longitude: 127.000}
	stations["B05"] = network.SourceStation{Name: "Delta", Line: "L2", Latitude: 37.001, Longitude: 127.001}

	line_stations := NewList[network.SourceLineStations](6)
	line_stations.Add(network.SourceLineStations{Station: "A01", Line: "L1", Up: []string{"A02", "A03"}, Down: []string{}})
	line_stations.Add(network.SourceLineStations{Station: "A02", Line: "L1", Up: []string{"A03"}, Down: []string{"A01"}})
	line_stations.Add(network.SourceLineStations{Station: "A03", Line: "L1", Up: []string{}, Down: []string{"A02", "A01"}})
	line_stations.Add(network.SourceLineStations{Station: "A02", Line: "L2", Up: []string{"B05"}, Down: []string{}})
	line_stations.Add(network.SourceLineStations{Station: "B05", Line: "L2", Up: []string{}, Down: []string{"A02"}})

	station_order := NewList[network.SourceStationOrder](5)
	station_order.Add(network.SourceStationOrder{Station: "A01", Line: "L1", Order: 0})
	station_order.Add(network.SourceStationOrder{Station: "A02", Line: "L1", Order: 1})
	station_order.Add(network.SourceStationOrder{Station: "A03", Line: "L1", Order: 2})
	station_order.Add(network.SourceStationOrder{Station: "A02", Line: "L2", Order: 0})
	station_order.Add(network.SourceStationOrder{Station: "B05", Line: "L2", Order: 1})

	transfers := NewList[network.SourceTransfer](2)
	transfers.Add(network.SourceTransfer{Station: "A02", FromLine: "L1", ToLine: "L2", Distance: 60.0})
	transfers.Add(network.SourceTransfer{Station: "A02", FromLine: "L2", ToLine: "L1", Distance: 60.0})

	return network.SourceData{
		Stations:     stations,
		LineStations: line_stations,
		StationOrder: station_order,
		Transfers:    transfers,
		Congestion:   NewList[network.SourceCongestion](0),
	}
}

func build_test_store() *network.Store {
	return network.NewStore(build_test_source(), scoring.DefaultParams())
}

// 09:00 on a Monday
func monday_morning() float64 {
	return float64(time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local).Unix())
}

func TestFindRoutesSameLine(t *testing.T) {
	store := build_test_store()
	router := NewRouter(store, scoring.DefaultParams())

	routes, err := router.FindRoutes("A01", []string{"A03"}, monday_morning(), "PHY", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routes.Length() != 1 {
		t.Fatalf("routes = %v; want 1", routes.Length())
	}
	label := routes[0]
	if label.Transfers != 0 {
		t.Errorf("transfers = %v; want 0", label.Transfers)
	}
	if label.ArrivalTime != 2.0 {
		t.Errorf("arrival_time = %v; want 2.0", label.ArrivalTime)
	}
}

func TestFindRoutesWithTransfer(t *testing.T) {
	store := build_test_store()
	router := NewRouter(store, scoring.DefaultParams())

	routes, err := router.FindRoutes("A01", []string{"B05"}, monday_morning(), "PHY", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routes.Length() != 1 {
		t.Fatalf("routes = %v; want exactly 1 candidate at B05", routes.Length())
	}
	found := false
	for _, label := range routes {
		if label.Transfers != 1 {
			continue
		}
		found = true
		// 0.6*(60/300) + 0.4*(1 - 0) with zeroed accessibility vectors
		want := 0.6*0.2 + 0.4*1.0
		if diff := label.MaxTransferDifficulty - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("max_transfer_difficulty = %v; want %v", label.MaxTransferDifficulty, want)
		}
		// ride 1 min, walk 60m at 0.5 m/s, ride 1 min
		want_arrival := 1.0 + 60.0/(0.5*60.0) + 1.0
		if diff := label.ArrivalTime - want_arrival; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("arrival_time = %v; want %v", label.ArrivalTime, want_arrival)
		}
	}
	if !found {
		t.Error("no candidate with transfers = 1")
	}
}

func TestFindRoutesMultipleDestinations(t *testing.T) {
	store := build_test_store()
	router := NewRouter(store, scoring.DefaultParams())

	routes, err := router.FindRoutes("A01", []string{"A03", "B05"}, monday_morning(), "VIS", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen_a03 := false
	seen_b05 := false
	for _, label := range routes {
		code := store.GetCode(label.StationID)
		if code == "A03" {
			seen_a03 = true
		}
		if code == "B05" {
			seen_b05 = true
		}
	}
	if !seen_a03 || !seen_b05 {
		t.Errorf("candidates missing a destination: A03=%v B05=%v", seen_a03, seen_b05)
	}
}

func TestFindRoutesUnknownOrigin(t *testing.T) {
	store := build_test_store()
	router := NewRouter(store, scoring.DefaultParams())

	_, err := router.FindRoutes("Z99", []string{"A03"}, monday_morning(), "PHY", 5)
	if err == nil {
		t.Fatal("expected UnknownStation error")
	}
	unknown, ok := err.(network.UnknownStationError)
	if !ok {
		t.Fatalf("error = %T; want UnknownStationError", err)
	}
	if unknown.Code != "Z99" {
		t.Errorf("code = %v; want Z99", unknown.Code)
	}
}

func TestFindRoutesEmptyDestinations(t *testing.T) {
	store := build_test_store()
	router := NewRouter(store, scoring.DefaultParams())

	routes, err := router.FindRoutes("A01", nil, monday_morning(), "PHY", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routes.Length() != 0 {
		t.Errorf("routes = %v; want 0", routes.Length())
	}
}

func TestFindRoutesOriginIsDestination(t *testing.T) {
	store := build_test_store()
	router := NewRouter(store, scoring.DefaultParams())

	routes, err := router.FindRoutes("A01", []string{"A01"}, monday_morning(), "PHY", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routes.Length() != 1 {
		t.Fatalf("routes = %v; want the origin label", routes.Length())
	}
	label := routes[0]
	if label.ArrivalTime != 0.0 || label.Transfers != 0 || label.Depth != 1 || !label.IsFirstMove {
		t.Errorf("origin label = %+v", label)
	}
}

func TestFindRoutesZeroRounds(t *testing.T) {
	store := build_test_store()
	router := NewRouter(store, scoring.DefaultParams())

	routes, err := router.FindRoutes("A01", []string{"A03"}, monday_morning(), "PHY", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routes.Length() != 0 {
		t.Errorf("routes = %v; want 0", routes.Length())
	}
}

// a transfer label minted in round N must not relax in round N: B05 is
// three relaxations away (ride, transfer, ride) and must stay
// unreachable until round 3
func TestRoundGating(t *testing.T) {
	store := build_test_store()

	router := NewRouter(store, scoring.DefaultParams())
	routes, err := router.FindRoutes("A01", []string{"B05"}, monday_morning(), "PHY", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routes.Length() != 0 {
		t.Fatalf("B05 reached in 2 rounds; round gating broken")
	}

	router = NewRouter(store, scoring.DefaultParams())
	routes, err = router.FindRoutes("A01", []string{"B05"}, monday_morning(), "PHY", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routes.Length() == 0 {
		t.Fatal("B05 not reached in 3 rounds")
	}
}

// labels matching an existing label on every active criterion must be
// discarded at insertion; otherwise every extra round re-relaxes the
// surviving labels and deposits one more identical copy per round
func TestExtraRoundsAddNoDuplicates(t *testing.T) {
	store := build_test_store()

	router := NewRouter(store, scoring.DefaultParams())
	short, err := router.FindRoutes("A01", []string{"A03"}, monday_morning(), "PHY", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	router = NewRouter(store, scoring.DefaultParams())
	long, err := router.FindRoutes("A01", []string{"A03"}, monday_morning(), "PHY", 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if short.Length() != long.Length() {
		t.Fatalf("candidates grew with rounds: %v at 2 rounds, %v at 8", short.Length(), long.Length())
	}
	if long.Length() != 1 {
		t.Errorf("candidates at A03 = %v; want 1", long.Length())
	}
}

func TestParetoSetAtDestination(t *testing.T) {
	store := build_test_store()
	router := NewRouter(store, scoring.DefaultParams())

	routes, err := router.FindRoutes("A01", []string{"A03", "B05"}, monday_morning(), "PHY", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	weights := scoring.GetANPWeights(scoring.PHY)
	for i := 0; i < routes.Length(); i++ {
		for j := 0; j < routes.Length(); j++ {
			if i == j || routes[i].StationID != routes[j].StationID {
				continue
			}
			if router.dominates(&routes[i], &routes[j], weights) && router.dominates(&routes[j], &routes[i], weights) {
				t.Errorf("labels %v and %v dominate each other", i, j)
			}
		}
	}
	for _, label := range routes {
		if label.Depth < 1 {
			t.Errorf("depth = %v; want >= 1", label.Depth)
		}
		if label.ArrivalTime < 0 {
			t.Errorf("arrival_time = %v; want >= 0", label.ArrivalTime)
		}
	}
}

func TestCyclicTopology(t *testing.T) {
	stations := NewDict[string, network.SourceStation](2)
	stations["C01"] = network.SourceStation{Name: "Loop East", Line: "L9", Latitude: 37.000, Longitude: 127.000}
	stations["C02"] = network.SourceStation{Name: "Loop West", Line: "L9", Latitude: 37.001, Longitude: 127.000}

	line_stations := NewList[network.SourceLineStations](2)
	line_stations.Add(network.SourceLineStations{Station: "C01", Line: "L9", Up: []string{"C02"}, Down: []string{"C02"}})
	line_stations.Add(network.SourceLineStations{Station: "C02", Line: "L9", Up: []string{"C01"}, Down: []string{"C01"}})

	source := network.SourceData{
		Stations:     stations,
		LineStations: line_stations,
		StationOrder: NewList[network.SourceStationOrder](0),
		Transfers:    NewList[network.SourceTransfer](0),
		Congestion:   NewList[network.SourceCongestion](0),
	}
	store := network.NewStore(source, scoring.DefaultParams())
	router := NewRouter(store, scoring.DefaultParams())

	routes, err := router.FindRoutes("C01", []string{"C02"}, monday_morning(), "PHY", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routes.Length() == 0 {
		t.Fatal("no route through cyclic topology")
	}
	for _, label := range routes {
		route := router.ReconstructRoute(label)
		seen := NewDict[string, bool](route.Length())
		for _, code := range route {
			if seen.ContainsKey(code) {
				t.Errorf("station %v revisited in %v", code, route)
			}
			seen[code] = true
		}
	}
}

// queries racing a facility update must observe either the old or the
// new accessibility vector, never a mix
func TestConcurrentAccessibilityUpdate(t *testing.T) {
	store := build_test_store()

	low := network.FacilityRow{StationCodes: []string{"A02"}}
	high := network.FacilityRow{StationCodes: []string{"A02"}}
	high.Elevators = 2.0
	store.UpdateFacilityScores([]network.FacilityRow{low})

	params := scoring.DefaultParams()
	score_low := scoring.ComputeStationScores(low.FacilityCounts, params.SigmoidSlope)[scoring.PHY]
	score_high := scoring.ComputeStationScores(high.FacilityCounts, params.SigmoidSlope)[scoring.PHY]

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
			}
			if i%2 == 0 {
				store.UpdateFacilityScores([]network.FacilityRow{high})
			} else {
				store.UpdateFacilityScores([]network.FacilityRow{low})
			}
		}
	}()

	for i := 0; i < 50; i++ {
		router := NewRouter(store, params)
		routes, err := router.FindRoutes("A01", []string{"B05"}, monday_morning(), "PHY", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, label := range routes {
			if label.Transfers != 1 {
				continue
			}
			conv := label.ConvenienceSum
			if !close_to(conv, score_low) && !close_to(conv, score_high) {
				t.Fatalf("convenience_sum = %v; want %v or %v", conv, score_low, score_high)
			}
		}
	}
	close(done)
	wg.Wait()
}

func close_to(a float64, b float64) bool {
	diff := a - b
	return diff < 1e-9 && diff > -1e-9
}
