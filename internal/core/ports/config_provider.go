package ports

// ConfigProvider exposes the few global configuration values the checkout
// core reads. Modeled as a narrow read-only collaborator instead of
// process-wide mutable state.
type ConfigProvider interface {
	// Currency returns the ISO code of the store currency.
	Currency() string
}
