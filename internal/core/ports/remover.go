package ports

// Remover defines the interface for deleting stale build artifacts.
//
//go:generate mockgen -source=remover.go -destination=mocks/mock_remover.go -package=mocks
type Remover interface {
	// RemoveGlob deletes every file matching pattern and returns the removed paths.
	// A pattern matching nothing is not an error.
	RemoveGlob(pattern string) ([]string, error)
}
