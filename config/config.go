package config

import (
	"time"

	"draughts/meta"

	"github.com/kelseyhightower/envconfig"
)

const Prefix = "DRAUGHTS"

type AgentSpec struct {
	Kind          string        `envconfig:"KIND"` // depth, time, random or softmax
	Depth         int           `envconfig:"DEPTH"`
	Duration      time.Duration `envconfig:"DURATION"`
	Evaluator     string        `envconfig:"EVALUATOR" default:"material"`
	CheckInterval int           `envconfig:"CHECK_INTERVAL"`
	Temperature   float64       `envconfig:"TEMPERATURE" default:"0.5"`
}

type Configuration struct {
	Experiment string `envconfig:"EXPERIMENT" default:"comparison"` // comparison or throughput
	Variant    string `envconfig:"VARIANT" default:"english"`
	Games      int    `envconfig:"GAMES" default:"100"`
	MaxTurns   int    `envconfig:"MAX_TURNS"`
	MaxDepth   int    `envconfig:"MAX_DEPTH" default:"6"` // Throughput experiment only
	Output     string `envconfig:"OUTPUT" default:"experiments"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	Seed       uint64 `envconfig:"SEED" default:"1"`

	First  AgentSpec `envconfig:"FIRST"`
	Second AgentSpec `envconfig:"SECOND"`
}

// Load reads the configuration from DRAUGHTS_ prefixed environment
// variables. By default a depth-limited agent plays a time-limited one.
// Unset or non-positive limits take their defaults from meta.
func Load() (*Configuration, error) {
	var config Configuration
	if err := envconfig.Process(Prefix, &config); err != nil {
		return nil, err
	}
	if config.First.Kind == "" {
		config.First.Kind = "depth"
	}
	if config.Second.Kind == "" {
		config.Second.Kind = "time"
	}
	if config.MaxTurns <= 0 {
		config.MaxTurns = meta.MAX_TURNS
	}
	for _, spec := range []*AgentSpec{&config.First, &config.Second} {
		if spec.Depth <= 0 {
			spec.Depth = meta.DEFAULT_DEPTH
		}
		if spec.Duration <= 0 {
			spec.Duration = meta.DEFAULT_DURATION * time.Millisecond
		}
		if spec.CheckInterval <= 0 {
			spec.CheckInterval = meta.DEFAULT_CHECK_INTERVAL
		}
	}
	return &config, nil
}
