package network

import (
	"fmt"

	"github.com/paulmach/orb"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"

	"github.com/accessnav/go-transit/scoring"
	. "github.com/accessnav/go-transit/util"
)

//*******************************************
// source collections
//*******************************************

type SourceStation struct {
	Name      string  `json:"name"`
	Line      string  `json:"line"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SourceLineStations struct {
	Station string   `json:"station"`
	Line    string   `json:"line"`
	Up      []string `json:"up"`
	Down    []string `json:"down"`
}

type SourceStationOrder struct {
	Station string `json:"station"`
	Line    string `json:"line"`
	Order   int    `json:"order"`
}

type SourceTransfer struct {
	Station  string  `json:"station"`
	FromLine string  `json:"from_line"`
	ToLine   string  `json:"to_line"`
	Distance float64 `json:"distance"`
}

type SourceCongestion struct {
	Station   string  `json:"station" csv:"station_cd"`
	Line      string  `json:"line" csv:"line"`
	Direction string  `json:"direction" csv:"direction"`
	DayType   string  `json:"day_type" csv:"day_type"`
	Slot      string  `json:"slot" csv:"slot"`
	Factor    float64 `json:"factor" csv:"factor"`
}

type SourceData struct {
	Stations     Dict[string, SourceStation]
	LineStations List[SourceLineStations]
	StationOrder List[SourceStationOrder]
	Transfers    List[SourceTransfer]
	Congestion   List[SourceCongestion]
}

//*******************************************
// loading
//*******************************************

// NewStore builds the immutable network from the source collections.
// Station ids are assigned by sorted code so that reloading the same
// sources yields an identical store. Accessibility vectors start at
// zero until the first facility update arrives.
func NewStore(source SourceData, params scoring.Params) *Store {
	store := &Store{
		params:        params,
		code_to_id:    NewDict[string, StationID](source.Stations.Length()),
		id_to_code:    NewList[string](source.Stations.Length()),
		stations:      NewList[StationInfo](source.Stations.Length()),
		station_lines: NewList[List[string]](source.Stations.Length()),
		topology:      NewDict[lineKey, DirectionLists](source.LineStations.Length()),
		orders:        NewDict[lineKey, int](source.StationOrder.Length()),
		line_orders:   NewDict[string, List[Tuple[int, StationID]]](10),
		transfers:     NewDict[transferKey, TransferData](source.Transfers.Length()),
		congestion:    NewDict[congestionKey, Dict[string, float64]](source.Congestion.Length()),
	}

	codes := NewList[string](source.Stations.Length())
	for code := range source.Stations {
		codes.Add(code)
	}
	slices.Sort(codes)

	for _, code := range codes {
		info := source.Stations[code]
		id := StationID(store.stations.Length())
		store.code_to_id[code] = id
		store.id_to_code.Add(code)
		store.stations.Add(StationInfo{
			ID:   id,
			Code: code,
			Name: info.Name,
			Line: info.Line,
			Loc:  orb.Point{info.Longitude, info.Latitude},
		})
		store.station_lines.Add(NewList[string](2))
	}
	store.scores = NewArray[[scoring.DISABILITY_COUNT]float64](store.stations.Length())

	for _, entry := range source.LineStations {
		id, ok := store.code_to_id[entry.Station]
		if !ok {
			continue
		}
		lists := DirectionLists{
			Up:   store.resolve_codes(entry.Up),
			Down: store.resolve_codes(entry.Down),
		}
		store.topology[lineKey{id, entry.Line}] = lists
	}

	// which lines a station participates in follows from the topology
	// keys, not from name matching
	for key := range store.topology {
		lines := store.station_lines[key.station]
		if !slices.Contains(lines, key.line) {
			lines.Add(key.line)
			store.station_lines.Set(int(key.station), lines)
		}
	}
	for i := 0; i < store.station_lines.Length(); i++ {
		slices.Sort(store.station_lines[i])
	}

	for _, entry := range source.StationOrder {
		id, ok := store.code_to_id[entry.Station]
		if !ok {
			continue
		}
		store.orders[lineKey{id, entry.Line}] = entry.Order
		ordered := store.line_orders[entry.Line]
		ordered.Add(MakeTuple(entry.Order, id))
		store.line_orders[entry.Line] = ordered
	}
	for line, ordered := range store.line_orders {
		slices.SortFunc(ordered, func(a, b Tuple[int, StationID]) int {
			return a.A - b.A
		})
		store.line_orders[line] = ordered
	}

	for _, entry := range source.Transfers {
		id, ok := store.code_to_id[entry.Station]
		if !ok {
			continue
		}
		store.transfers[transferKey{id, entry.FromLine, entry.ToLine}] = TransferData{Distance: entry.Distance}
	}

	for _, entry := range source.Congestion {
		id, ok := store.code_to_id[entry.Station]
		if !ok {
			continue
		}
		key := congestionKey{id, entry.Line, DirectionFromString(entry.Direction), entry.DayType}
		slots := store.congestion[key]
		if slots == nil {
			slots = NewDict[string, float64](48)
			store.congestion[key] = slots
		}
		slots[entry.Slot] = entry.Factor
	}

	slog.Info(fmt.Sprintf("loaded network: %v stations, %v topology entries, %v transfers",
		store.stations.Length(), store.topology.Length(), store.transfers.Length()))
	return store
}

func (self *Store) resolve_codes(codes []string) List[StationID] {
	ids := NewList[StationID](len(codes))
	for _, code := range codes {
		if id, ok := self.code_to_id[code]; ok {
			ids.Add(id)
		}
	}
	return ids
}
