package config

// DefaultConfig returns the built-in project configuration.
func DefaultConfig() *Config {
	return &Config{
		Build: BuildConfig{
			Source:    "pages",
			Dest:      "dist",
			OutputExt: ".htm",
		},
		Vars: map[string]interface{}{},
	}
}

// mergeConfig fills zero-valued fields of cfg from defaults.
func mergeConfig(cfg, defaults *Config) {
	if cfg.Build.Source == "" {
		cfg.Build.Source = defaults.Build.Source
	}
	if cfg.Build.Dest == "" {
		cfg.Build.Dest = defaults.Build.Dest
	}
	if cfg.Build.OutputExt == "" {
		cfg.Build.OutputExt = defaults.Build.OutputExt
	}
	if cfg.Vars == nil {
		cfg.Vars = map[string]interface{}{}
	}
}
