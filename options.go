package datasim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ttrotto/DataSimulator/internal/options"
	"github.com/ttrotto/DataSimulator/snapshot"
)

// pipelineConfig holds the resolved run settings.
type pipelineConfig struct {
	seed      uint64
	rows      int
	outputDir string
	codec     snapshot.CodecType
	logger    *zap.Logger
}

// Option is a functional option for Run.
type Option = options.Option[*pipelineConfig]

func defaultPipelineConfig() *pipelineConfig {
	return &pipelineConfig{
		seed:      DefaultSeed,
		rows:      DefaultRows,
		outputDir: ".",
		codec:     snapshot.CodecNone,
		logger:    zap.NewNop(),
	}
}

func applyOptions(cfg *pipelineConfig, opts ...Option) error {
	return options.Apply(cfg, opts...)
}

// WithSeed overrides the run seed. The same seed reproduces every number
// and artifact byte of a run.
func WithSeed(seed uint64) Option {
	return options.NoError(func(cfg *pipelineConfig) {
		cfg.seed = seed
	})
}

// WithRows overrides the per-dataset row count.
func WithRows(rows int) Option {
	return options.New(func(cfg *pipelineConfig) error {
		if rows <= 0 {
			return fmt.Errorf("rows %d must be positive", rows)
		}
		cfg.rows = rows

		return nil
	})
}

// WithOutputDir sets the directory the figures and snapshots are written
// to. The directory must exist.
func WithOutputDir(dir string) Option {
	return options.New(func(cfg *pipelineConfig) error {
		if dir == "" {
			return fmt.Errorf("output directory must not be empty")
		}
		cfg.outputDir = dir

		return nil
	})
}

// WithSnapshotCodec selects the compression codec for dataset snapshots.
func WithSnapshotCodec(codec snapshot.CodecType) Option {
	return options.NoError(func(cfg *pipelineConfig) {
		cfg.codec = codec
	})
}

// WithLogger attaches a logger to the run. The default discards logs.
func WithLogger(logger *zap.Logger) Option {
	return options.New(func(cfg *pipelineConfig) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		cfg.logger = logger

		return nil
	})
}
