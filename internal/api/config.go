package api

import (
	"time"

	"github.com/hireloop/scheduler/internal/schedule"
)

type Config struct {
	Proxy struct {
		Header  string   `yaml:"header"`
		Trusted []string `yaml:"trusted"`
	} `yaml:"proxy"`

	HTTP struct {
		Addr         string        `yaml:"addr"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"http"`

	// Availability is the slot grid applied to every request served by
	// this instance. One shared grid also keeps panel intersection exact.
	Availability schedule.AvailabilityConfig `yaml:"availability"`
}
