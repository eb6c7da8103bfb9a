package parser

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"

	"github.com/accessnav/go-transit/network"
	. "github.com/accessnav/go-transit/util"
)

// walking distance assumed for transfers between platforms that share
// one OSM node
const MIN_TRANSFER_DISTANCE = 60.0

//*******************************************
// osm network builder
//*******************************************

// BuildNetworkSource extracts a rail network from an OSM PBF extract:
// rail route relations become lines, their ordered stop members become
// stations, and stations shared between lines become transfer edges.
// Congestion tables cannot be derived from OSM and are left empty.
func BuildNetworkSource(pbf_file string) network.SourceData {
	line_stops := _ParseRailRelations(pbf_file)
	stop_nodes := _ParseStopNodes(pbf_file, line_stops)
	source := _AssembleSource(line_stops, stop_nodes)
	slog.Info(fmt.Sprintf("built network from %v: %v lines, %v stations",
		pbf_file, line_stops.Length(), source.Stations.Length()))
	return source
}

type stop_node struct {
	point orb.Point
	name  string
}

var rail_route_types = []string{"subway", "light_rail", "tram", "train"}

func _ParseRailRelations(filename string) Dict[string, List[int64]] {
	file, err := os.Open(filename)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	line_stops := NewDict[string, List[int64]](100)

	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipNodes = true
	scanner.SkipWays = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Relation:
			tags := Dict[string, string](object.TagMap())
			if tags["type"] != "route" || !slices.Contains(rail_route_types, tags["route"]) {
				continue
			}
			line := tags["ref"]
			if line == "" {
				line = tags["name"]
			}
			if line == "" {
				continue
			}
			stops := NewList[int64](20)
			for _, member := range object.Members {
				if member.Type != osm.TypeNode {
					continue
				}
				if member.Role != "stop" && member.Role != "station" {
					continue
				}
				stops.Add(member.Ref)
			}
			// route variants map to the same line; keep the longest
			if stops.Length() > line_stops[line].Length() {
				line_stops[line] = stops
			}
		default:
			continue
		}
	}
	return line_stops
}

func _ParseStopNodes(filename string, line_stops Dict[string, List[int64]]) Dict[int64, stop_node] {
	wanted := NewDict[int64, bool](1000)
	for _, stops := range line_stops {
		for _, ref := range stops {
			wanted[ref] = true
		}
	}

	file, err := os.Open(filename)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	nodes := NewDict[int64, stop_node](wanted.Length())

	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			id := object.FeatureID().Ref()
			if !wanted.ContainsKey(id) {
				continue
			}
			tags := object.TagMap()
			nodes[id] = stop_node{
				point: orb.Point{object.Lon, object.Lat},
				name:  tags["name"],
			}
		default:
			continue
		}
	}
	return nodes
}

func _AssembleSource(line_stops Dict[string, List[int64]], stop_nodes Dict[int64, stop_node]) network.SourceData {
	source := network.SourceData{
		Stations:     NewDict[string, network.SourceStation](stop_nodes.Length()),
		LineStations: NewList[network.SourceLineStations](stop_nodes.Length()),
		StationOrder: NewList[network.SourceStationOrder](stop_nodes.Length()),
		Transfers:    NewList[network.SourceTransfer](100),
		Congestion:   NewList[network.SourceCongestion](0),
	}

	lines := NewList[string](line_stops.Length())
	for line := range line_stops {
		lines.Add(line)
	}
	slices.Sort(lines)

	// merge platforms of the same named station into one canonical
	// code so that transfers stay within a single station record
	name_to_code := NewDict[string, string](stop_nodes.Length())
	// code -> line -> platform node, for transfer distances
	platforms := NewDict[string, Dict[string, int64]](stop_nodes.Length())

	for _, line := range lines {
		sequence := NewList[string](line_stops[line].Length())
		for _, ref := range line_stops[line] {
			node, ok := stop_nodes[ref]
			if !ok {
				continue
			}
			name := node.name
			if name == "" {
				name = "n" + strconv.FormatInt(ref, 10)
			}
			code, ok := name_to_code[name]
			if !ok {
				code = strconv.FormatInt(ref, 10)
				name_to_code[name] = code
				source.Stations[code] = network.SourceStation{
					Name:      name,
					Line:      line,
					Latitude:  node.point.Lat(),
					Longitude: node.point.Lon(),
				}
				platforms[code] = NewDict[string, int64](2)
			}
			if slices.Contains(sequence, code) {
				continue
			}
			sequence.Add(code)
			platforms[code][line] = ref
		}

		for i, code := range sequence {
			up := NewList[string](sequence.Length() - i - 1)
			for j := i + 1; j < sequence.Length(); j++ {
				up.Add(sequence[j])
			}
			down := NewList[string](i)
			for j := i - 1; j >= 0; j-- {
				down.Add(sequence[j])
			}
			source.LineStations.Add(network.SourceLineStations{
				Station: code,
				Line:    line,
				Up:      up,
				Down:    down,
			})
			source.StationOrder.Add(network.SourceStationOrder{
				Station: code,
				Line:    line,
				Order:   i,
			})
		}
	}

	for code, by_line := range platforms {
		if by_line.Length() < 2 {
			continue
		}
		station_lines := NewList[string](by_line.Length())
		for line := range by_line {
			station_lines.Add(line)
		}
		slices.Sort(station_lines)
		for _, from_line := range station_lines {
			for _, to_line := range station_lines {
				if from_line == to_line {
					continue
				}
				a := stop_nodes[by_line[from_line]]
				b := stop_nodes[by_line[to_line]]
				distance := geo.DistanceHaversine(a.point, b.point)
				if distance < MIN_TRANSFER_DISTANCE {
					distance = MIN_TRANSFER_DISTANCE
				}
				source.Transfers.Add(network.SourceTransfer{
					Station:  code,
					FromLine: from_line,
					ToLine:   to_line,
					Distance: distance,
				})
			}
		}
	}

	return source
}
