package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config is the root application configuration.
type Config struct {
	Input    string         `yaml:"input"  env:"WORDDECK_INPUT"  env-default:"words.xlsx"`
	Output   string         `yaml:"output" env:"WORDDECK_OUTPUT" env-default:"words.pptx"`
	Layout   LayoutConfig   `yaml:"layout"`
	Template TemplateConfig `yaml:"template"`
	Log      LogConfig      `yaml:"log"`
	License  LicenseConfig  `yaml:"license"`
}

// LayoutConfig holds slide generation settings.
type LayoutConfig struct {
	WrapThreshold int `yaml:"wrap_threshold" env:"WORDDECK_WRAP_THRESHOLD" env-default:"40"`
	ProgressEvery int `yaml:"progress_every" env:"WORDDECK_PROGRESS_EVERY" env-default:"10"`
}

// TemplateConfig holds sample template settings.
type TemplateConfig struct {
	Name string `yaml:"name" env:"WORDDECK_TEMPLATE_NAME" env-default:"单词表模板.xlsx"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	// File receives log records instead of stderr when set. The desktop form
	// has no console to show stderr.
	File string `yaml:"file" env:"WORDDECK_LOG_FILE"`
}

// LicenseConfig holds the unioffice license. Without one, saved decks carry
// the library's unlicensed notice on the first slide.
type LicenseConfig struct {
	Key      string `yaml:"key"      env:"UNIOFFICE_LICENSE_KEY"`
	Customer string `yaml:"customer" env:"UNIOFFICE_CUSTOMER"`
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Input) == "" {
		errs = append(errs, errors.New("input must not be empty"))
	}
	if strings.TrimSpace(c.Output) == "" {
		errs = append(errs, errors.New("output must not be empty"))
	}
	if c.Layout.WrapThreshold <= 0 {
		errs = append(errs, fmt.Errorf("layout.wrap_threshold must be positive, got %d", c.Layout.WrapThreshold))
	}
	if c.Layout.ProgressEvery <= 0 {
		errs = append(errs, fmt.Errorf("layout.progress_every must be positive, got %d", c.Layout.ProgressEvery))
	}
	if strings.TrimSpace(c.Template.Name) == "" {
		errs = append(errs, errors.New("template.name must not be empty"))
	}
	if strings.TrimSpace(c.License.Key) != "" && strings.TrimSpace(c.License.Customer) == "" {
		errs = append(errs, errors.New("license.customer is required with license.key"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
