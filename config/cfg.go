package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	CompareConfig struct {
		Extension        string      `yaml:"extension" validate:"required,startswith=."`
		WorkingDirectory string      `yaml:"working_directory" validate:"omitempty,dir"`
		Strict           bool        `yaml:"strict"`
		AtRules          AtRulesMode `yaml:"at_rules" validate:"required"`
		Encoding         string      `yaml:"encoding"`
	}

	ReportConfig struct {
		Format   ReportFormat `yaml:"format" validate:"required"`
		Color    ColorMode    `yaml:"color" validate:"required"`
		Progress bool         `yaml:"progress"`
		Details  bool         `yaml:"details"`
		Order    OrderMode    `yaml:"order" validate:"required"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Compare   CompareConfig  `yaml:"compare"`
		Report    ReportConfig   `yaml:"report"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// additionalChecks validates relations between fields which cannot be
// expressed with tags.
func additionalChecks(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	file := cfg.Logging.FileLogger
	if file.Level != "none" && file.Destination == "" {
		sl.ReportError(file.Destination, "Destination", "destination", "required_for_level", file.Level)
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// Only fields we defined are allowed, so no yaml.Unmarshal here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("configuration sanitizing failed: %w", err)
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(additionalChecks)); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
