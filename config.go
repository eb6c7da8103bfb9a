package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/accessnav/go-transit/parser"
	"github.com/accessnav/go-transit/scoring"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	yaml.Unmarshal(data, &config)
	return config
}

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Source parser.SourceFiles `yaml:"source"`
	Build  struct {
		Enabled bool   `yaml:"enabled"`
		OSM     string `yaml:"osm"`
	} `yaml:"build"`
	Model scoring.Params `yaml:"model"`
}

// ModelParams fills unset model values with the defaults.
func (self Config) ModelParams() scoring.Params {
	params := scoring.DefaultParams()
	if self.Model.TransitSpeed > 0 {
		params.TransitSpeed = self.Model.TransitSpeed
	}
	if self.Model.SegmentTimeFloor > 0 {
		params.SegmentTimeFloor = self.Model.SegmentTimeFloor
	}
	if self.Model.TransferCutoff > 0 {
		params.TransferCutoff = self.Model.TransferCutoff
	}
	if self.Model.SigmoidSlope > 0 {
		params.SigmoidSlope = self.Model.SigmoidSlope
	}
	if self.Model.NeutralCongestion > 0 {
		params.NeutralCongestion = self.Model.NeutralCongestion
	}
	return params
}
