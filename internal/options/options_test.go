package options

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	engine  string
	secure  bool
	initial int
}

func withEngine(name string) Option[*testConfig] {
	return func(c *testConfig) { c.engine = name }
}

func withSecure(enabled bool) Option[*testConfig] {
	return func(c *testConfig) { c.secure = enabled }
}

func withInitial(n int) Option[*testConfig] {
	return func(c *testConfig) {
		if n > 0 {
			c.initial = n
		}
	}
}

func TestApplyRunsOptionsInOrder(t *testing.T) {
	cfg := &testConfig{}
	Apply(cfg, withEngine("big"), withSecure(true), withInitial(64))

	require.Equal(t, "big", cfg.engine)
	require.True(t, cfg.secure)
	require.Equal(t, 64, cfg.initial)
}

func TestApplyLaterOptionOverridesEarlier(t *testing.T) {
	cfg := &testConfig{}
	Apply(cfg, withEngine("big"), withEngine("local"))

	require.Equal(t, "local", cfg.engine)
}

func TestApplyWithNoOptionsLeavesZeroValue(t *testing.T) {
	cfg := &testConfig{}
	Apply(cfg)

	require.Equal(t, testConfig{}, *cfg)
}

func TestApplyGuardSkipsNonPositiveValue(t *testing.T) {
	cfg := &testConfig{initial: 32}
	Apply(cfg, withInitial(0))

	require.Equal(t, 32, cfg.initial, "withInitial(0) must not override a prior positive size")
}

func TestOptionWorksWithNonStructTarget(t *testing.T) {
	var n int
	set := func(v int) Option[*int] {
		return func(target *int) { *target = v }
	}

	Apply(&n, set(42))
	require.Equal(t, 42, n)
}
