package ports

import "github.com/aalvaropc/slope/internal/domain"

// ConfigLoader loads configuration from a directory, applying defaults.
type ConfigLoader interface {
	LoadConfig(root string) (domain.Config, error)
}
