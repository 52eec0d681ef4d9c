package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chaindict/lib/logger"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestParse(t *testing.T) {
	src := `
# dict properties
initial-capacity 64
Load-Factor 0.5
log-level  debug
unknown-key ignored
`
	p, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 64, p.InitialCapacity)
	assert.Equal(t, 0.5, p.LoadFactor)
	assert.Equal(t, "debug", p.LogLevel)
}

func TestParse_Defaults(t *testing.T) {
	p, err := Parse(strings.NewReader("# nothing here\n"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), p)
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{
		"initial-capacity many",
		"initial-capacity 0",
		"load-factor -1",
		"load-factor NaN",
		"load-factor high",
	}
	for _, src := range cases {
		_, err := Parse(strings.NewReader(src))
		assert.Error(t, err, src)
		assert.Equal(t, ErrInvalidProperty, errors.Cause(err), src)
	}
}

func TestLoadProperties(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "dict.conf")
	require.NoError(t, os.WriteFile(filename, []byte("initial-capacity 8\n"), 0o644))

	p, err := LoadProperties(filename)
	require.NoError(t, err)
	assert.Equal(t, 8, p.InitialCapacity)
	assert.Equal(t, DefaultLoadFactor, p.LoadFactor)

	_, err = LoadProperties(filepath.Join(t.TempDir(), "missing.conf"))
	assert.Error(t, err)
	assert.Panics(t, func() { SetupConfigProperties(filepath.Join(t.TempDir(), "missing.conf")) })
}

func TestSetupConfigProperties(t *testing.T) {
	old := Properties
	defer func() { Properties = old }()

	filename := filepath.Join(t.TempDir(), "dict.conf")
	require.NoError(t, os.WriteFile(filename, []byte("load-factor 0.9\n"), 0o644))
	SetupConfigProperties(filename)
	assert.Equal(t, 0.9, Properties.LoadFactor)
}

func TestModule(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "dict.conf")
	require.NoError(t, os.WriteFile(filename, []byte("initial-capacity 32\nlog-level warn\n"), 0o644))
	t.Setenv(EnvConfigFile, filename)
	defer logger.SetLevel(DefaultLogLevel)

	var p *DictProperties
	app := fxtest.New(t, Module, fx.Populate(&p))
	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, 32, p.InitialCapacity)
	assert.Equal(t, "warning", logger.Level())
}

func TestModule_LogLevelFromEnv(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvLogLevel, "error")
	defer logger.SetLevel(DefaultLogLevel)

	var p *DictProperties
	app := fxtest.New(t, Module, fx.Populate(&p))
	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, DefaultInitialCapacity, p.InitialCapacity)
	assert.Equal(t, "error", p.LogLevel)
	assert.Equal(t, "error", logger.Level())
}
