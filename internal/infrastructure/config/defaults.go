package config

const (
	defaultPollIntervalSec = 30
	defaultListenAddr      = "127.0.0.1:7878"

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 14
)

// DefaultConfig returns the default configuration values for colorpref.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text", // text or json
			File: LogFileConfig{
				Enabled:    false,
				MaxSizeMB:  defaultLogMaxSizeMB,
				MaxBackups: defaultLogMaxBackups,
				MaxAgeDays: defaultLogMaxAgeDays,
				Compress:   true,
			},
		},
		Storage: StorageConfig{
			Backend: StorageBackendFile,
			// Path is resolved per backend in Load()
		},
		Display: DisplayConfig{
			Mode: DisplayModeAuto,
		},
		Detection: DetectionConfig{
			PollIntervalSec:  defaultPollIntervalSec,
			GsettingsMonitor: true,
			WatchGTKSettings: true,
			Disabled:         []string{},
		},
		Server: ServerConfig{
			Listen: defaultListenAddr,
		},
	}
}
