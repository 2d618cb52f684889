package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// FragmentConfig describes single SVG fragment and its place in the composite.
	FragmentConfig struct {
		Name    string `yaml:"name" validate:"required,excludes=--,excludes=*/"`
		File    string `yaml:"file" sanitize:"path_clean" validate:"required"`
		YOffset int    `yaml:"y_offset" validate:"gte=0"`
	}

	PreviewConfig struct {
		Enable      bool   `yaml:"enable"`
		Destination string `yaml:"destination" validate:"required_if=Enable true"`
		Width       int    `yaml:"width" validate:"gte=0,lte=8192"`
	}

	CompositeConfig struct {
		AssetsDir       string           `yaml:"assets_dir" sanitize:"path_clean" validate:"required"`
		Output          string           `yaml:"output" sanitize:"path_clean" validate:"required,filepath"`
		Width           int              `yaml:"width" validate:"min=1"`
		Height          int              `yaml:"height" validate:"min=1"`
		Background      string           `yaml:"background" validate:"required"`
		Dedupe          DedupeMode       `yaml:"dedupe" validate:"gte=0"`
		StyleCollisions CollisionMode    `yaml:"style_collisions" validate:"gte=0"`
		Fragments       []FragmentConfig `yaml:"fragments" validate:"required,min=1,dive"`
		Preview         PreviewConfig    `yaml:"preview"`
	}

	Config struct {
		Version   int             `yaml:"version" validate:"eq=1"`
		Composite CompositeConfig `yaml:"composite"`
		Logging   LoggingConfig   `yaml:"logging"`
		Reporting ReporterConfig  `yaml:"reporting"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
//
// NOTE: yaml decoder replaces sequences, so fragments list from the file
// replaces default list completely rather than being merged with it.
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

	// overwrite cfg values with values from the file
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
