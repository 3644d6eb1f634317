// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stylegen/internal/adapters/config"
	_ "go.trai.ch/stylegen/internal/adapters/fs"
	_ "go.trai.ch/stylegen/internal/adapters/logger"
	_ "go.trai.ch/stylegen/internal/adapters/shell"
	_ "go.trai.ch/stylegen/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/stylegen/internal/app"
)
