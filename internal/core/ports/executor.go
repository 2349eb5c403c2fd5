// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/hpwbuild/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd and blocks until it exits.
	//
	// It returns an error wrapping domain.ErrExecutableNotFound when the
	// executable does not exist, and domain.ErrCommandFailed when the process
	// exits with a non-zero status.
	Execute(ctx context.Context, cmd domain.Command) error
}
