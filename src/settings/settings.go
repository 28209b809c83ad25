package settings

type Arguments struct {
	// The file path for log output, empty means stdout
	LogFile string

	// Strongly verbose logging
	Verbose bool

	Debug bool // Enable debug-level logging
}
