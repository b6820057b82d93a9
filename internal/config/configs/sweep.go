package configs

import "time"

// Sweep configures the background expiration sweep. Interval is the delay
// between two runs and Retention how long an expired campaign is kept
// before it is deleted.
type Sweep struct {
	Enabled    bool          `env:"ENABLED" envDefault:"true"`
	Interval   time.Duration `env:"INTERVAL" envDefault:"1h"`
	Retention  time.Duration `env:"RETENTION" envDefault:"168h"`
	RunOnStart bool          `env:"RUN_ON_START" envDefault:"true"`
}
