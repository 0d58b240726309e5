package dynarray

import (
	"fmt"

	"github.com/npillmayer/containers"
)

// DefaultCapacity is the initial capacity of arrays created without an
// explicit capacity.
const DefaultCapacity = 10

// Config configures a dynamic array.
type Config struct {
	// InitialCapacity is the capacity of the backing store at creation time.
	// A value of 0 selects DefaultCapacity.
	InitialCapacity int
}

func (cfg Config) normalized() Config {
	if cfg.InitialCapacity == 0 {
		cfg.InitialCapacity = DefaultCapacity
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.InitialCapacity < 0 {
		return fmt.Errorf("%w: negative initial capacity %d",
			containers.ErrIllegalArguments, cfg.InitialCapacity)
	}
	return nil
}
