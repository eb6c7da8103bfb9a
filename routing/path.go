package routing

import (
	. "github.com/accessnav/go-transit/util"
)

//*******************************************
// path reconstruction
//*******************************************

// ReconstructRoute expands a returned candidate label into the full
// ordered list of station codes from the origin to the leaf, including
// the intermediate stations of every on-line segment. The label is
// reidentified in the arena by value, so reconstruction must happen
// before the next query clears it; an unidentifiable label yields an
// empty path.
func (self *Router) ReconstructRoute(leaf Label) List[string] {
	chain := self.chain(leaf)
	route := NewList[string](chain.Length())
	if chain.Length() == 0 {
		return route
	}

	route.Add(self.store.GetCode(chain[0].StationID))
	for i := 1; i < chain.Length(); i++ {
		prev := chain[i-1]
		curr := chain[i]
		if prev.CurrentLine != curr.CurrentLine {
			// a same-station line change contributes a single node
			if curr.StationID != prev.StationID {
				route.Add(self.store.GetCode(curr.StationID))
			}
		} else {
			for _, id := range self.store.GetIntermediateStations(prev.StationID, curr.StationID, curr.CurrentLine) {
				route.Add(self.store.GetCode(id))
			}
		}
	}
	return route
}

// ReconstructLines returns the line ridden at every node of the
// sequence produced by ReconstructRoute, index for index.
func (self *Router) ReconstructLines(leaf Label) List[string] {
	chain := self.chain(leaf)
	lines := NewList[string](chain.Length())
	if chain.Length() == 0 {
		return lines
	}

	lines.Add(chain[0].CurrentLine)
	for i := 1; i < chain.Length(); i++ {
		prev := chain[i-1]
		curr := chain[i]
		if prev.CurrentLine != curr.CurrentLine {
			if curr.StationID != prev.StationID {
				lines.Add(curr.CurrentLine)
			}
		} else {
			count := self.store.GetIntermediateStations(prev.StationID, curr.StationID, curr.CurrentLine).Length()
			for j := 0; j < count; j++ {
				lines.Add(curr.CurrentLine)
			}
		}
	}
	return lines
}

// chain reidentifies the leaf in the arena and collects its parent
// chain in forward (origin first) order.
func (self *Router) chain(leaf Label) List[Label] {
	idx := NO_PARENT
	for i := 0; i < self.arena.Length(); i++ {
		label := &self.arena[i]
		if label.StationID == leaf.StationID &&
			label.CurrentLine == leaf.CurrentLine &&
			label.ArrivalTime == leaf.ArrivalTime &&
			label.Transfers == leaf.Transfers {
			idx = LabelIndex(i)
			break
		}
	}

	chain := NewList[Label](8)
	for idx != NO_PARENT {
		chain.Add(self.arena[idx])
		idx = self.arena[idx].ParentIndex
	}
	for i, j := 0, chain.Length()-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
