package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	value int
}

func TestApply_RunsInOrder(t *testing.T) {
	cfg := &testConfig{}
	err := Apply(cfg,
		NoError(func(c *testConfig) { c.value = 1 }),
		NoError(func(c *testConfig) { c.value += 10 }),
	)
	require.NoError(t, err)
	require.Equal(t, 11, cfg.value)
}

func TestApply_StopsOnFirstError(t *testing.T) {
	cfg := &testConfig{}
	boom := errors.New("boom")
	err := Apply(cfg,
		New(func(c *testConfig) error { c.value = 1; return nil }),
		New(func(c *testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.value = 99 }),
	)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, cfg.value)
}
