package main

import (
	"github.com/innoai-tech/infra/pkg/cli"
	"github.com/innoai-tech/infra/pkg/otel"

	"github.com/octohelm/depotkit/pkg/depot/api"
	"github.com/octohelm/depotkit/pkg/depothttp"
)

func init() {
	cli.AddTo(Serve, &Depot{})
}

// Artifact depot
type Depot struct {
	cli.C `component:"depot"`
	otel.Otel

	api.DepotProvider
	depothttp.Server
}
