package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/embedgen/embedgen/internal/config"
	"github.com/embedgen/embedgen/internal/generator"
	"github.com/embedgen/embedgen/internal/ui"
	"github.com/embedgen/embedgen/pkg/log"
)

// runGenerate loads the optional configuration, validates the input folder,
// and drives the generation of the .c/.h artifact pair.
//
// Returns:
//   - error: An error if configuration is invalid or generation fails.
func runGenerate(inputDir, outputBase string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Detect a missing input folder before any output file is created.
	info, err := os.Stat(inputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("folder %q not found", inputDir)
	}

	opts := generator.Options{
		DisableIndexAlias: noIndexAlias,
	}

	err = ui.RunSpinner("Embedding files...", func() error {
		return generator.Generate(cfg, inputDir, outputBase, opts)
	})
	if err != nil {
		return err
	}

	ui.PrintSuccess("generate", fmt.Sprintf("Generated %s.c and %s.h", outputBase, outputBase))
	return nil
}

// loadConfig reads and validates the embedgen.yaml configuration.
// A missing configuration file is not an error; defaults apply.
func loadConfig(path string) (*config.Config, error) {
	var cfg config.Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	config.ApplyDefaults(&cfg)

	if err := config.Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
