package util

import (
	"os"
	"path/filepath"
	"testing"
)

type io_test_row struct {
	Station string  `csv:"station_cd"`
	Line    string  `csv:"line"`
	Factor  float64 `csv:"factor"`
	Ignored string
}

func TestJSONRoundtrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "value.json")

	value := NewDict[string, int](2)
	value["a"] = 1
	value["b"] = 2
	WriteJSONToFile(value, file)

	read := ReadJSONFromFile[Dict[string, int]](file)
	if read.Length() != 2 || read["a"] != 1 || read["b"] != 2 {
		t.Errorf("read = %v; want %v", read, value)
	}
}

func TestReadJSONMissingFilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing file")
		}
	}()
	ReadJSONFromFile[int]("./does_not_exist.json")
}

func TestReadCSVFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "rows.csv")
	content := "station_cd,line,extra,factor\nA01,L1,x,0.8\nA02,L2,y,1.2\n"
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rows := NewList[io_test_row](2)
	ReadCSVFromFile[io_test_row](file, ',')(func(row io_test_row) bool {
		rows.Add(row)
		return true
	})

	if rows.Length() != 2 {
		t.Fatalf("rows = %v; want 2", rows.Length())
	}
	if rows[0].Station != "A01" || rows[0].Line != "L1" || rows[0].Factor != 0.8 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Station != "A02" || rows[1].Factor != 1.2 {
		t.Errorf("row 1 = %+v", rows[1])
	}
	if rows[0].Ignored != "" {
		t.Errorf("untagged field set: %v", rows[0].Ignored)
	}
}
