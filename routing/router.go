package routing

import (
	"fmt"

	"github.com/paulmach/orb/geo"
	"golang.org/x/exp/slog"

	"github.com/accessnav/go-transit/network"
	"github.com/accessnav/go-transit/scoring"
	. "github.com/accessnav/go-transit/util"
)

// arena capacity reserved up front to avoid resizing on large queries
const ARENA_RESERVE = 200000

//*******************************************
// mc router
//*******************************************

// Router runs multi-criteria round-based label-setting queries against
// one network store. A Router owns a single label arena and must not
// be shared between concurrent queries; create one per query and
// reconstruct paths before the next FindRoutes call clears the arena.
type Router struct {
	store  *network.Store
	params scoring.Params
	arena  List[Label]
}

func NewRouter(store *network.Store, params scoring.Params) *Router {
	return &Router{
		store:  store,
		params: params,
		arena:  NewList[Label](ARENA_RESERVE),
	}
}

// FindRoutes returns detached copies of every non-dominated label that
// reaches one of the destinations within max_rounds rounds. An empty
// result means no journey was found; unknown station codes fail with
// network.UnknownStationError.
func (self *Router) FindRoutes(origin_code string, dest_codes []string, departure_time float64, disability string, max_rounds int) (List[Label], error) {
	self.store.RLock()
	defer self.store.RUnlock()

	self.arena.Clear()

	origin_id, err := self.store.GetID(origin_code)
	if err != nil {
		return nil, err
	}
	dest_set := NewDict[network.StationID, bool](len(dest_codes))
	dest_ids := NewList[network.StationID](len(dest_codes))
	for _, code := range dest_codes {
		id, err := self.store.GetID(code)
		if err != nil {
			return nil, err
		}
		if !dest_set.ContainsKey(id) {
			dest_set[id] = true
			dest_ids.Add(id)
		}
	}

	dtype := scoring.DisabilityFromString(disability)
	weights := scoring.GetANPWeights(dtype)
	walk_speed := scoring.GetWalkingSpeed(dtype)
	day_type := scoring.GetDayType(departure_time)

	bags := NewDict[network.StationID, List[LabelIndex]](100)
	marked := NewDict[network.StationID, bool](100)

	// one origin label per line the origin participates in
	for _, line := range self.store.GetLines(origin_id) {
		idx := self.create_label(Label{
			ParentIndex:  NO_PARENT,
			StationID:    origin_id,
			CurrentLine:  line,
			Direction:    network.UNKNOWN,
			Transfers:    0,
			ArrivalTime:  0.0,
			Depth:        1,
			IsFirstMove:  true,
			CreatedRound: 0,
		})
		bag := bags[origin_id]
		bag.Add(idx)
		bags[origin_id] = bag
	}
	marked[origin_id] = true

	for round := 1; round <= max_rounds; round++ {
		if marked.Length() == 0 {
			break
		}
		queue := NewList[network.StationID](marked.Length())
		for id := range marked {
			queue.Add(id)
		}
		next_marked := NewDict[network.StationID, bool](queue.Length())

		for _, u := range queue {
			for _, l_idx := range bags[u] {
				label := self.arena[l_idx]
				// round gating: labels minted this round wait for the next
				if label.CreatedRound >= round {
					continue
				}
				// destinations are terminal
				if dest_set.ContainsKey(u) {
					continue
				}

				// A. scan along the current line
				next_stations := self.store.GetNextStations(u, label.CurrentLine)
				self.scan_direction(l_idx, u, next_stations.Up, network.UP, round, departure_time, day_type, weights, bags, next_marked)
				self.scan_direction(l_idx, u, next_stations.Down, network.DOWN, round, departure_time, day_type, weights, bags, next_marked)

				// B. transfer to other lines at this station
				for _, next_line := range self.store.GetLines(u) {
					if next_line == label.CurrentLine {
						continue
					}
					transfer := self.store.GetTransfer(u, label.CurrentLine, next_line)
					if !transfer.HasValue() {
						continue
					}
					distance := transfer.Value.Distance
					transfer_time := distance / (walk_speed * 60.0)

					station_score := self.store.GetStationScore(u, dtype)
					difficulty := scoring.TransferDifficulty(distance, station_score, self.params)
					max_difficulty := label.MaxTransferDifficulty
					if difficulty > max_difficulty {
						max_difficulty = difficulty
					}

					new_idx := self.create_label(Label{
						ParentIndex:           l_idx,
						StationID:             u,
						CurrentLine:           next_line,
						Direction:             network.UNKNOWN,
						Transfers:             label.Transfers + 1,
						ArrivalTime:           label.ArrivalTime + transfer_time,
						ConvenienceSum:        label.ConvenienceSum + station_score,
						CongestionSum:         label.CongestionSum,
						MaxTransferDifficulty: max_difficulty,
						Depth:                 label.Depth + 1,
						IsFirstMove:           true,
						CreatedRound:          round,
					})

					// transfers only compete against labels on the same line
					dominated := false
					for _, ex := range bags[u] {
						if self.arena[ex].CurrentLine != next_line {
							continue
						}
						if self.dominates_or_equal(&self.arena[ex], &self.arena[new_idx], weights) {
							dominated = true
							break
						}
					}
					if !dominated {
						bag := bags[u]
						bag.Add(new_idx)
						bags[u] = bag
						next_marked[u] = true
					}
				}
			}
		}
		marked = next_marked
	}

	results := NewList[Label](8)
	for _, d := range dest_ids {
		for _, idx := range bags[d] {
			results.Add(self.arena[idx])
		}
	}
	slog.Debug(fmt.Sprintf("mc router: %v labels created, %v candidates at destinations", self.arena.Length(), results.Length()))
	return results, nil
}

// scan_direction walks one directional neighbor list, creating a label
// for every reachable station that does not close a cycle.
func (self *Router) scan_direction(l_idx LabelIndex, u network.StationID, targets List[network.StationID], dir network.Direction, round int, departure_time float64, day_type string, weights scoring.ANPWeights, bags Dict[network.StationID, List[LabelIndex]], next_marked Dict[network.StationID, bool]) {
	label := self.arena[l_idx]
	cum_time := 0.0
	prev := u

	for _, v := range targets {
		if self.check_visited(l_idx, v) {
			continue
		}

		s1 := self.store.GetStation(prev)
		s2 := self.store.GetStation(v)
		distance := geo.DistanceHaversine(s1.Loc, s2.Loc)
		segment_time := distance / self.params.TransitSpeed
		if segment_time < self.params.SegmentTimeFloor {
			segment_time = self.params.SegmentTimeFloor
		}
		cum_time += segment_time

		current_time := departure_time + (label.ArrivalTime+cum_time)*60.0
		slot := scoring.GetTimeSlot(current_time)
		segment_congestion := self.store.GetCongestion(prev, label.CurrentLine, dir, day_type, slot)

		// riding adds no accessibility points
		new_idx := self.create_label(Label{
			ParentIndex:           l_idx,
			StationID:             v,
			CurrentLine:           label.CurrentLine,
			Direction:             dir,
			Transfers:             label.Transfers,
			ArrivalTime:           label.ArrivalTime + cum_time,
			ConvenienceSum:        label.ConvenienceSum,
			CongestionSum:         label.CongestionSum + segment_congestion,
			MaxTransferDifficulty: label.MaxTransferDifficulty,
			Depth:                 label.Depth + 1,
			IsFirstMove:           false,
			CreatedRound:          round,
		})

		dominated := false
		for _, ex := range bags[v] {
			if self.dominates_or_equal(&self.arena[ex], &self.arena[new_idx], weights) {
				dominated = true
				break
			}
		}
		if !dominated {
			bag := bags[v]
			bag.Add(new_idx)
			bags[v] = bag
			next_marked[v] = true
		}
		prev = v
	}
}

func (self *Router) create_label(label Label) LabelIndex {
	self.arena.Add(label)
	return LabelIndex(self.arena.Length() - 1)
}

// check_visited reports whether target already appears in the parent
// chain of the given label.
func (self *Router) check_visited(idx LabelIndex, target network.StationID) bool {
	for idx != NO_PARENT {
		if self.arena[idx].StationID == target {
			return true
		}
		idx = self.arena[idx].ParentIndex
	}
	return false
}

// dominates_or_equal holds when a is at least as good as b on every
// active criterion. Insertion prunes on this weaker order: a candidate
// matching an existing label on all active criteria adds nothing to
// the result set and would keep its station marked round after round.
// Criteria with zero ANP weight do not participate.
func (self *Router) dominates_or_equal(a *Label, b *Label, w scoring.ANPWeights) bool {
	if a.Transfers > b.Transfers {
		return false
	}
	if a.ArrivalTime > b.ArrivalTime {
		return false
	}
	if w.TransferDifficulty > 0.0 && a.MaxTransferDifficulty > b.MaxTransferDifficulty {
		return false
	}
	if w.Congestion > 0.0 && a.AvgCongestion() > b.AvgCongestion() {
		return false
	}
	if w.Convenience > 0.0 && a.AvgConvenience() < b.AvgConvenience() {
		return false
	}
	return true
}

// dominates implements the strict weighted Pareto order: a dominates b
// when a is at least as good on every active criterion and strictly
// better on one.
func (self *Router) dominates(a *Label, b *Label, w scoring.ANPWeights) bool {
	if !self.dominates_or_equal(a, b, w) {
		return false
	}
	if a.Transfers < b.Transfers {
		return true
	}
	if a.ArrivalTime < b.ArrivalTime {
		return true
	}
	if w.TransferDifficulty > 0.0 && a.MaxTransferDifficulty < b.MaxTransferDifficulty {
		return true
	}
	if w.Congestion > 0.0 && a.AvgCongestion() < b.AvgCongestion() {
		return true
	}
	if w.Convenience > 0.0 && a.AvgConvenience() > b.AvgConvenience() {
		return true
	}
	return false
}
