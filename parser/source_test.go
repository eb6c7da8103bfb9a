package parser

import (
	"path/filepath"
	"testing"
)

func testdata_files() SourceFiles {
	return SourceFiles{
		Stations:     "./testdata/stations.json",
		LineStations: "./testdata/line_stations.json",
		StationOrder: "./testdata/station_order.json",
		Transfers:    "./testdata/transfers.json",
		Congestion:   "./testdata/congestion.csv",
		Facilities:   "./testdata/facilities.json",
	}
}

func TestLoadSource(t *testing.T) {
	source := LoadSource(testdata_files())

	if source.Stations.Length() != 3 {
		t.Errorf("stations = %v; want 3", source.Stations.Length())
	}
	if !source.Stations.ContainsKey("B05") {
		t.Error("B05 missing")
	}
	if source.LineStations.Length() != 4 {
		t.Errorf("line stations = %v; want 4", source.LineStations.Length())
	}
	if source.StationOrder.Length() != 4 {
		t.Errorf("station orders = %v; want 4", source.StationOrder.Length())
	}
	if source.Transfers.Length() != 2 {
		t.Errorf("transfers = %v; want 2", source.Transfers.Length())
	}

	if source.Congestion.Length() != 3 {
		t.Fatalf("congestion rows = %v; want 3", source.Congestion.Length())
	}
	row := source.Congestion[0]
	if row.Station != "A01" || row.Line != "L1" || row.Direction != "up" ||
		row.DayType != "weekday" || row.Slot != "t_480" || row.Factor != 0.9 {
		t.Errorf("congestion row 0 = %+v", row)
	}
}

func TestLoadSourceMissingCongestion(t *testing.T) {
	files := testdata_files()
	files.Congestion = "./testdata/nope.csv"

	source := LoadSource(files)
	if source.Congestion.Length() != 0 {
		t.Errorf("congestion rows = %v; want 0", source.Congestion.Length())
	}
}

func TestLoadFacilityRows(t *testing.T) {
	rows := LoadFacilityRows("./testdata/facilities.json")
	if len(rows) != 1 {
		t.Fatalf("rows = %v; want 1", len(rows))
	}
	row := rows[0]
	if len(row.StationCodes) != 2 || row.StationCodes[0] != "A01" {
		t.Errorf("station codes = %v", row.StationCodes)
	}
	if row.Elevators != 2.0 || row.Escalators != 4.0 || row.SignPhones != 0.0 {
		t.Errorf("counts = %+v", row.FacilityCounts)
	}

	if LoadFacilityRows("") != nil {
		t.Error("empty path should yield nil")
	}
	if LoadFacilityRows("./testdata/nope.json") != nil {
		t.Error("missing file should yield nil")
	}
}

func TestWriteSourceRoundtrip(t *testing.T) {
	source := LoadSource(testdata_files())

	dir := t.TempDir()
	out := SourceFiles{
		Stations:     filepath.Join(dir, "stations.json"),
		LineStations: filepath.Join(dir, "line_stations.json"),
		StationOrder: filepath.Join(dir, "station_order.json"),
		Transfers:    filepath.Join(dir, "transfers.json"),
	}
	WriteSource(source, out)

	reread := LoadSource(out)
	if reread.Stations.Length() != source.Stations.Length() {
		t.Errorf("stations = %v; want %v", reread.Stations.Length(), source.Stations.Length())
	}
	if reread.LineStations.Length() != source.LineStations.Length() {
		t.Errorf("line stations = %v; want %v", reread.LineStations.Length(), source.LineStations.Length())
	}
	if reread.Transfers.Length() != source.Transfers.Length() {
		t.Errorf("transfers = %v; want %v", reread.Transfers.Length(), source.Transfers.Length())
	}
}
