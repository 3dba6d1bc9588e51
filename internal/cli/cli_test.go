package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/focusgridgo/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		app.EnvCorpus, app.EnvWorld, app.EnvRules, app.EnvLocalisation, app.EnvOut, app.EnvFormat,
		app.EnvCountries, app.EnvLogFormat, app.EnvLogLevel, app.EnvWorkers, app.EnvPublishURL,
	} {
		t.Setenv(key, "")
	}
}

func TestParse(t *testing.T) {
	t.Run("flags and positional corpus", func(t *testing.T) {
		// --- Arrange ---
		clearEnv(t)
		args := []string{
			"-world", "world.hcl",
			"-corpus", "base,dlc",
			"-localisation", "loc",
			"-countries", "GER,FRA",
			"-format", "HCL",
			"-workers", "7",
			"-log-level", "debug",
			"extra",
		}

		// --- Act ---
		cfg, shouldExit, err := Parse(args, &bytes.Buffer{})

		// --- Assert ---
		require.NoError(t, err)
		assert.False(t, shouldExit)
		assert.Equal(t, []string{"base", "dlc", "extra"}, cfg.CorpusPaths)
		assert.Equal(t, "world.hcl", cfg.WorldPath)
		assert.Equal(t, []string{"loc"}, cfg.LocalisationPaths)
		assert.Equal(t, []string{"GER", "FRA"}, cfg.Countries)
		assert.Equal(t, app.FormatHCL, cfg.OutputFormat)
		assert.Equal(t, 7, cfg.WorkerCount)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "output", cfg.OutputDir)
	})

	t.Run("environment supplies defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(app.EnvCorpus, "env-corpus")
		t.Setenv(app.EnvWorld, "env-world.hcl")

		cfg, _, err := Parse([]string{"-world", "flag-world.hcl"}, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, []string{"env-corpus"}, cfg.CorpusPaths)
		assert.Equal(t, "flag-world.hcl", cfg.WorldPath)
	})

	t.Run("corpus flag replaces the environment value", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(app.EnvCorpus, "env-corpus")

		cfg, _, err := Parse([]string{"-world", "w.hcl", "-c", "a", "-c", "b"}, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, cfg.CorpusPaths)
	})

	t.Run("no corpus prints usage", func(t *testing.T) {
		clearEnv(t)
		out := &bytes.Buffer{}

		cfg, shouldExit, err := Parse(nil, out)

		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("help", func(t *testing.T) {
		clearEnv(t)
		_, shouldExit, err := Parse([]string{"-h"}, &bytes.Buffer{})

		require.NoError(t, err)
		assert.True(t, shouldExit)
	})

	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
		{"missing world", []string{"corpus"}, "Config.WorldPath is required"},
		{"bad log format", []string{"-world", "w", "-log-format", "xml", "corpus"}, "Config.LogFormat must be one of"},
		{"bad output format", []string{"-world", "w", "-format", "pdf", "corpus"}, "Config.OutputFormat must be one of"},
		{"bad country", []string{"-world", "w", "-countries", "ger", "corpus"}, "not a country tag"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)

			_, _, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantErr)
		})
	}
}
