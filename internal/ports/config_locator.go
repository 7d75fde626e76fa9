package ports

// ConfigLocator finds the directory holding slope.yaml starting from an arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}
