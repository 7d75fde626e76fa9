package ports

// ConfigInitializer writes a starter slope.yaml into root.
type ConfigInitializer interface {
	Init(root string, force bool) ([]string, error)
}
