// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"strconv"

	"github.com/gobuffalo/envy"
	"github.com/hyp3rd/ewrap"
	"github.com/joho/godotenv"
)

// Environment keys read by LoadConfiguration
const (
	EnvFramesPerSecond = "KORU_FPS"
	EnvFrames          = "KORU_FRAMES"
	EnvLogLevel        = "KORU_LOG_LEVEL"
	EnvTracer          = "KORU_TRACER"
)

// Tracer names accepted in DriverConfiguration.Tracer
const (
	TracerRuntime = "runtime"
	TracerLog     = "log"
	TracerNone    = "none"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time   TimeConfiguration
	Driver DriverConfiguration
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// Frames is how many frames to run before stopping,
	// 0 runs until interrupted
	Frames int
}

// DriverConfiguration is used to configure the backend driver
type DriverConfiguration struct {
	// LogLevel is a logrus level name, e.g. "debug"
	LogLevel string

	// Tracer selects where command markers go: runtime, log or none
	Tracer string
}

// DefaultConfiguration returns the configuration used when nothing is set
func DefaultConfiguration() Configuration {
	return Configuration{
		Time: TimeConfiguration{
			FramesPerSecond: 60,
			Frames:          120,
		},
		Driver: DriverConfiguration{
			LogLevel: "info",
			Tracer:   TracerRuntime,
		},
	}
}

// LoadConfiguration reads the configuration from the environment, after
// loading files as .env files. Variables already set in the environment
// win over the files.
func LoadConfiguration(files ...string) (Configuration, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Configuration{}, ewrap.Wrapf(err, "loading env files %v", files)
		}
	}
	envy.Reload()

	cfg := DefaultConfiguration()

	var err error
	if cfg.Time.FramesPerSecond, err = envInt(EnvFramesPerSecond, cfg.Time.FramesPerSecond); err != nil {
		return Configuration{}, err
	}
	if cfg.Time.Frames, err = envInt(EnvFrames, cfg.Time.Frames); err != nil {
		return Configuration{}, err
	}
	cfg.Driver.LogLevel = envy.Get(EnvLogLevel, cfg.Driver.LogLevel)
	cfg.Driver.Tracer = envy.Get(EnvTracer, cfg.Driver.Tracer)

	return cfg, nil
}

func envInt(key string, fallback int) (int, error) {
	raw := envy.Get(key, strconv.Itoa(fallback))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ewrap.Wrapf(err, "parsing %s", key).WithMetadata("value", raw)
	}
	if value < 0 {
		return 0, ewrap.New("negative value").
			WithMetadata("key", key).
			WithMetadata("value", raw)
	}
	return value, nil
}
