package main

import (
	"net/http"
	"os"

	"golang.org/x/exp/slog"

	"github.com/accessnav/go-transit/network"
	"github.com/accessnav/go-transit/parser"
	"github.com/accessnav/go-transit/scoring"
)

var STORE *network.Store
var PARAMS scoring.Params

func main() {
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, nil)))

	config := ReadConfig("./config.yaml")
	PARAMS = config.ModelParams()

	if config.Build.Enabled {
		source := parser.BuildNetworkSource(config.Build.OSM)
		parser.WriteSource(source, config.Source)
	}

	source := parser.LoadSource(config.Source)
	STORE = network.NewStore(source, PARAMS)

	if rows := parser.LoadFacilityRows(config.Source.Facilities); rows != nil {
		STORE.UpdateFacilityScores(rows)
	}

	app := http.DefaultServeMux
	MapPost(app, "/v1/routing/transit", HandleTransitRoutingRequest)
	MapPost(app, "/v1/accessibility/update", HandleFacilityUpdateRequest)
	MapGet(app, "/v1/stations", HandleStationRequest)

	slog.Info("listening on " + config.Server.Addr)
	http.ListenAndServe(config.Server.Addr, nil)
}
