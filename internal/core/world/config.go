package world

// Config holds world configuration.
type Config struct {
	// Name identifies the world in log output.
	Name string

	// TraceDispatch installs a dispatch observer that logs every broadcast
	// at debug level. Enabling it also turns on dispatcher metrics.
	TraceDispatch bool
}
