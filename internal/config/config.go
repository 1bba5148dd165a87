// Package config loads the optional YAML settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/sadopc/exlog/internal/exercise"
	"github.com/sadopc/exlog/internal/export"
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Form   FormConfig   `yaml:"form"`
	Export ExportConfig `yaml:"export"`
}

type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// FormConfig holds the values a new exercise form starts with.
type FormConfig struct {
	PrimaryMovement  string `yaml:"primary_movement"`
	RepType          string `yaml:"rep_type"`
	SimpleRepCount   int    `yaml:"simple_rep_count"`
	HoldDuration     int    `yaml:"hold_duration"`
	TempoRepCount    int    `yaml:"tempo_rep_count"`
	TempoEccentric   int    `yaml:"tempo_eccentric"`
	TempoPauseBottom int    `yaml:"tempo_pause_bottom"`
	TempoConcentric  int    `yaml:"tempo_concentric"`
	TempoPauseTop    int    `yaml:"tempo_pause_top"`
}

type ExportConfig struct {
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	f := exercise.DefaultFormState()
	return &Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Form: FormConfig{
			PrimaryMovement:  string(f.PrimaryMovement),
			RepType:          string(f.RepType),
			SimpleRepCount:   f.SimpleRepCount,
			HoldDuration:     f.HoldDuration,
			TempoRepCount:    f.TempoRepCount,
			TempoEccentric:   f.TempoEccentric,
			TempoPauseBottom: f.TempoPauseBottom,
			TempoConcentric:  f.TempoConcentric,
			TempoPauseTop:    f.TempoPauseTop,
		},
		Export: ExportConfig{Format: string(export.FormatJSON)},
	}
}

// Load reads the YAML file at path over the defaults. An empty path yields
// the defaults unchanged. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.MaxSizeMB < 0 {
		return fmt.Errorf("log.max_size_mb must not be negative")
	}
	if c.Log.MaxBackups < 0 {
		return fmt.Errorf("log.max_backups must not be negative")
	}

	if _, err := exercise.ParseMovement(c.Form.PrimaryMovement); err != nil {
		return fmt.Errorf("form.primary_movement: %w", err)
	}
	if _, err := exercise.ParseRepType(c.Form.RepType); err != nil {
		return fmt.Errorf("form.rep_type: %w", err)
	}
	for _, n := range []struct {
		key   string
		value int
	}{
		{"form.simple_rep_count", c.Form.SimpleRepCount},
		{"form.hold_duration", c.Form.HoldDuration},
		{"form.tempo_rep_count", c.Form.TempoRepCount},
		{"form.tempo_eccentric", c.Form.TempoEccentric},
		{"form.tempo_pause_bottom", c.Form.TempoPauseBottom},
		{"form.tempo_concentric", c.Form.TempoConcentric},
		{"form.tempo_pause_top", c.Form.TempoPauseTop},
	} {
		if n.value < 0 {
			return fmt.Errorf("%s must not be negative", n.key)
		}
	}

	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	return nil
}

// FormState returns the blank form a new exercise starts from. Call it only
// on a validated config.
func (f FormConfig) FormState() exercise.FormState {
	s := exercise.DefaultFormState()
	s.PrimaryMovement = exercise.Movement(f.PrimaryMovement)
	s.RepType = exercise.RepType(f.RepType)
	s.SimpleRepCount = f.SimpleRepCount
	s.HoldDuration = f.HoldDuration
	s.TempoRepCount = f.TempoRepCount
	s.TempoEccentric = f.TempoEccentric
	s.TempoPauseBottom = f.TempoPauseBottom
	s.TempoConcentric = f.TempoConcentric
	s.TempoPauseTop = f.TempoPauseTop
	return s
}

// ExportFormat returns the configured initial export format.
func (c *Config) ExportFormat() export.Format {
	return export.Format(c.Export.Format)
}
