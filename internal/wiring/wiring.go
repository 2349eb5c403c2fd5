// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hpwbuild/internal/adapters/config"
	_ "go.trai.ch/hpwbuild/internal/adapters/fs"
	_ "go.trai.ch/hpwbuild/internal/adapters/logger"
	_ "go.trai.ch/hpwbuild/internal/adapters/shell"
	_ "go.trai.ch/hpwbuild/internal/adapters/stamp"
	_ "go.trai.ch/hpwbuild/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/hpwbuild/internal/app"
	_ "go.trai.ch/hpwbuild/internal/engine/orchestrator"
)
