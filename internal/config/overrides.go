package config

// Overrides carries per-invocation command-line settings. Zero values
// mean "keep the configured value"; boolean flips are only additive
// since the config file already expresses the negative default.
type Overrides struct {
	Forward   string
	Up        string
	FlipU     bool
	FlipV     bool
	BigEndian bool
	LogLevel  string
}

// Apply applies command-line overrides on top of the loaded config.
func (c *Config) Apply(o Overrides) {
	if o.Forward != "" {
		c.Export.Forward = o.Forward
	}
	if o.Up != "" {
		c.Export.Up = o.Up
	}
	if o.FlipU {
		c.Export.FlipU = true
	}
	if o.FlipV {
		c.Export.FlipV = true
	}
	if o.BigEndian {
		c.Export.Endianness = "big"
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
}
