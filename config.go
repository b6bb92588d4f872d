package datasim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ttrotto/DataSimulator/snapshot"
)

// Config is the YAML run configuration. Zero-valued fields keep their
// defaults, so a partial file only overrides what it names.
type Config struct {
	// Seed overrides the run seed.
	Seed *uint64 `yaml:"seed"`
	// Rows overrides the per-dataset row count.
	Rows int `yaml:"rows"`
	// OutputDir overrides the artifact directory.
	OutputDir string `yaml:"output_dir"`
	// SnapshotCodec names the snapshot compression codec:
	// none, zstd, s2 or lz4.
	SnapshotCodec string `yaml:"snapshot_codec"`
}

// LoadConfig reads a YAML run configuration from path.
//
// Parameters:
//   - path: Configuration file path
//
// Returns:
//   - *Config: Parsed configuration
//   - error: Read or parse error naming the path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.SnapshotCodec != "" {
		if _, err := snapshot.ParseCodecType(cfg.SnapshotCodec); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	return &cfg, nil
}

// Options converts the configuration to run options, skipping unset fields.
func (c *Config) Options() ([]Option, error) {
	var opts []Option
	if c.Seed != nil {
		opts = append(opts, WithSeed(*c.Seed))
	}
	if c.Rows != 0 {
		opts = append(opts, WithRows(c.Rows))
	}
	if c.OutputDir != "" {
		opts = append(opts, WithOutputDir(c.OutputDir))
	}
	if c.SnapshotCodec != "" {
		codec, err := snapshot.ParseCodecType(c.SnapshotCodec)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSnapshotCodec(codec))
	}

	return opts, nil
}
