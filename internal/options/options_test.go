package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value int
	name  string
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.name = "run" }),
		New(func(c *testConfig) error {
			c.value = 42
			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, "run", cfg.name)
	require.Equal(t, 42, cfg.value)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &testConfig{}
	boom := errors.New("boom")

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.value = 1 }),
		New(func(c *testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.value = 2 }),
	)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, cfg.value, "options after the failure must not run")
}

func TestApply_NoOptions(t *testing.T) {
	require.NoError(t, Apply(&testConfig{}))
}
