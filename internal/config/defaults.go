package config

import (
	"github.com/thywilljoshua/mathq/internal/ai"
	"github.com/thywilljoshua/mathq/internal/questions"
)

// Defaults mirror the extractor's own so a config file and a bare
// questions.DefaultConfig agree.
const (
	DefaultOutputPath = questions.DefaultOutputPath
	DefaultPageLimit  = questions.DefaultPageLimit
	DefaultReader     = questions.ReaderRSC
	DefaultModel      = ai.DefaultModel
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	if cfg.PageLimit == nil {
		n := DefaultPageLimit
		cfg.PageLimit = &n
	}
	if cfg.Reader == "" {
		cfg.Reader = DefaultReader
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = DefaultModel
	}
}
