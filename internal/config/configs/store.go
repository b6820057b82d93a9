package configs

import "strings"

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Store selects the entity store backing the engine. The memory driver keeps
// everything in process and loses it on exit; it is meant for local runs.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// DriverName normalises Driver. Unknown values fall back to postgres.
func (c Store) DriverName() string {
	switch strings.ToLower(strings.TrimSpace(c.Driver)) {
	case StoreDriverMemory:
		return StoreDriverMemory
	default:
		return StoreDriverPostgres
	}
}
