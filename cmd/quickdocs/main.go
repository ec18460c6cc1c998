package main

import (
	"github.com/smallbiznis/quickdocs/internal/observability"
	"github.com/smallbiznis/quickdocs/internal/server"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		observability.Module,
		server.Module,
	)
	app.Run()
}
