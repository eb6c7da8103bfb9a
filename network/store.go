package network

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"github.com/accessnav/go-transit/scoring"
	. "github.com/accessnav/go-transit/util"
)

//*******************************************
// network store
//*******************************************

type lineKey struct {
	station StationID
	line    string
}

type transferKey struct {
	station   StationID
	from_line string
	to_line   string
}

type congestionKey struct {
	station StationID
	line    string
	dir     Direction
	day     string
}

// Store owns the rail network. Everything except the accessibility
// vectors is immutable after NewStore; the vectors are refreshed in
// batches under the writer half of the lock while queries hold the
// reader half for their full duration.
type Store struct {
	mutex  sync.RWMutex
	params scoring.Params

	code_to_id    Dict[string, StationID]
	id_to_code    List[string]
	stations      List[StationInfo]
	station_lines List[List[string]]
	topology      Dict[lineKey, DirectionLists]
	orders        Dict[lineKey, int]
	line_orders   Dict[string, List[Tuple[int, StationID]]]
	transfers     Dict[transferKey, TransferData]
	congestion    Dict[congestionKey, Dict[string, float64]]
	scores        Array[[scoring.DISABILITY_COUNT]float64]
}

// RLock takes the shared read lease for the duration of a query.
func (self *Store) RLock() {
	self.mutex.RLock()
}
func (self *Store) RUnlock() {
	self.mutex.RUnlock()
}

func (self *Store) StationCount() int {
	return self.stations.Length()
}

func (self *Store) GetID(code string) (StationID, error) {
	id, ok := self.code_to_id[code]
	if !ok {
		return 0, UnknownStationError{Code: code}
	}
	return id, nil
}

func (self *Store) GetCode(id StationID) string {
	if int(id) >= self.id_to_code.Length() {
		return ""
	}
	return self.id_to_code[id]
}

func (self *Store) GetStation(id StationID) StationInfo {
	return self.stations[id]
}

func (self *Store) GetLines(id StationID) List[string] {
	return self.station_lines[id]
}

func (self *Store) GetNextStations(id StationID, line string) DirectionLists {
	return self.topology[lineKey{id, line}]
}

func (self *Store) GetTransfer(id StationID, from_line string, to_line string) Optional[TransferData] {
	td, ok := self.transfers[transferKey{id, from_line, to_line}]
	if !ok {
		return None[TransferData]()
	}
	return Some(td)
}

// GetCongestion falls back to the neutral midscale factor on any miss;
// the router must tolerate sparse congestion tables.
func (self *Store) GetCongestion(id StationID, line string, dir Direction, day string, slot string) float64 {
	slots, ok := self.congestion[congestionKey{id, line, dir, day}]
	if !ok {
		return self.params.NeutralCongestion
	}
	factor, ok := slots[slot]
	if !ok {
		return self.params.NeutralCongestion
	}
	return factor
}

func (self *Store) GetStationScore(id StationID, typ scoring.DisabilityType) float64 {
	if int(id) >= self.scores.Length() {
		return 0.0
	}
	return self.scores[id][typ]
}

// GetIntermediateStations enumerates the stations between from and to
// on one line in riding order, exclusive of from and inclusive of to.
// Without order data only the target is returned.
func (self *Store) GetIntermediateStations(from StationID, to StationID, line string) List[StationID] {
	result := NewList[StationID](4)

	from_order, from_ok := self.orders[lineKey{from, line}]
	to_order, to_ok := self.orders[lineKey{to, line}]
	ordered, line_ok := self.line_orders[line]
	if !from_ok || !to_ok || !line_ok {
		result.Add(to)
		return result
	}

	if from_order < to_order {
		for _, entry := range ordered {
			if entry.A > from_order && entry.A <= to_order {
				result.Add(entry.B)
			}
		}
	} else {
		for i := ordered.Length() - 1; i >= 0; i-- {
			entry := ordered[i]
			if entry.A < from_order && entry.A >= to_order {
				result.Add(entry.B)
			}
		}
	}
	if result.Length() == 0 {
		result.Add(to)
	}
	return result
}

//*******************************************
// accessibility updates
//*******************************************

// UpdateFacilityScores applies a batch of facility rows atomically.
// Active queries finish on the old vectors; queries started after the
// update observe the new ones.
func (self *Store) UpdateFacilityScores(rows []FacilityRow) {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	updated := 0
	for _, row := range rows {
		scores := scoring.ComputeStationScores(row.FacilityCounts, self.params.SigmoidSlope)
		for _, code := range row.StationCodes {
			id, ok := self.code_to_id[code]
			if !ok {
				continue
			}
			self.scores.Set(int(id), scores)
			updated += 1
		}
	}
	slog.Info(fmt.Sprintf("updated accessibility scores for %v stations", updated))
}
