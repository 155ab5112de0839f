// Package lib contains the core, reusable services for the uicopy application.
package lib

// --- Constants ---

// DefaultSource is the file copied when neither a flag nor the environment names one.
const DefaultSource = `C:\C\Qt\Ui\mainwindow.ui`

// DefaultDestination is the directory the file is copied into by default.
const DefaultDestination = `C:\C\Qt\ZNote-dev\ZNote-dev`

// SourceEnvVar overrides DefaultSource when set to a non-empty value.
const SourceEnvVar = "UICOPY_SOURCE"

// DestinationEnvVar overrides DefaultDestination when set to a non-empty value.
const DestinationEnvVar = "UICOPY_DESTINATION"

// Config holds the two paths a run works with.
type Config struct {
	Source      string
	Destination string
}

// DefaultConfig returns the compiled-in paths.
func DefaultConfig() Config {
	return Config{
		Source:      DefaultSource,
		Destination: DefaultDestination,
	}
}

// LoadConfig starts from DefaultConfig and applies environment overrides.
// lookup has the signature of os.LookupEnv so tests can pass a map-backed stub.
func LoadConfig(lookup func(string) (string, bool)) Config {
	cfg := DefaultConfig()
	if lookup == nil {
		return cfg
	}
	if v, ok := lookup(SourceEnvVar); ok && v != "" {
		cfg.Source = v
	}
	if v, ok := lookup(DestinationEnvVar); ok && v != "" {
		cfg.Destination = v
	}
	return cfg
}
