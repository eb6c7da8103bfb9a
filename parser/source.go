package parser

import (
	"errors"
	"os"

	"github.com/accessnav/go-transit/network"
	. "github.com/accessnav/go-transit/util"
)

//*******************************************
// network source files
//*******************************************

type SourceFiles struct {
	Stations     string `yaml:"stations"`
	LineStations string `yaml:"line-stations"`
	StationOrder string `yaml:"station-order"`
	Transfers    string `yaml:"transfers"`
	Congestion   string `yaml:"congestion"`
	Facilities   string `yaml:"facilities"`
}

// LoadSource reads the five network source collections. The congestion
// table is a flat csv and may be absent; the router falls back to the
// neutral factor for stations it has no data for.
func LoadSource(files SourceFiles) network.SourceData {
	source := network.SourceData{
		Stations:     ReadJSONFromFile[Dict[string, network.SourceStation]](files.Stations),
		LineStations: ReadJSONFromFile[List[network.SourceLineStations]](files.LineStations),
		StationOrder: ReadJSONFromFile[List[network.SourceStationOrder]](files.StationOrder),
		Transfers:    ReadJSONFromFile[List[network.SourceTransfer]](files.Transfers),
		Congestion:   NewList[network.SourceCongestion](1000),
	}
	if file_exists(files.Congestion) {
		ReadCSVFromFile[network.SourceCongestion](files.Congestion, ',')(func(row network.SourceCongestion) bool {
			source.Congestion.Add(row)
			return true
		})
	}
	return source
}

// LoadFacilityRows reads the initial accessibility feed; later batches
// arrive through the update endpoint.
func LoadFacilityRows(file string) []network.FacilityRow {
	if !file_exists(file) {
		return nil
	}
	return ReadJSONFromFile[[]network.FacilityRow](file)
}

// WriteSource persists a built network as the standard source files.
func WriteSource(source network.SourceData, files SourceFiles) {
	WriteJSONToFile(source.Stations, files.Stations)
	WriteJSONToFile(source.LineStations, files.LineStations)
	WriteJSONToFile(source.StationOrder, files.StationOrder)
	WriteJSONToFile(source.Transfers, files.Transfers)
}

func file_exists(file string) bool {
	if file == "" {
		return false
	}
	_, err := os.Stat(file)
	return !errors.Is(err, os.ErrNotExist)
}
