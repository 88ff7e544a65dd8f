package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payroll.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output":{"color":true},"logging":{"level":"debug"}}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 60, cfg.Output.RuleWidth)
	assert.Equal(t, "$", cfg.Output.CurrencySymbol)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payroll.yaml")
	body := "output:\n  rule_width: 40\n  currency_symbol: \"€\"\nlogging:\n  level: info\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Output.RuleWidth)
	assert.Equal(t, "€", cfg.Output.CurrencySymbol)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Output.Color)
}

func TestLoadRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payroll.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output":`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestLoadRejectsZeroRuleWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payroll.yml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  rule_width: 0\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"nested/payroll.json", "nested/payroll.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			cfg := Default()
			cfg.Output.Color = true

			require.NoError(t, cfg.Save(path))
			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestGetSet(t *testing.T) {
	orig := Get()
	t.Cleanup(func() { Set(orig) })

	cfg := Default()
	cfg.Version = "2.0"
	Set(cfg)
	assert.Equal(t, "2.0", Get().Version)
}
