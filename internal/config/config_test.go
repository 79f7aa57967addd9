package config

import (
	"github.com/litetable/versiontable/internal/store"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleConfig = `
server_address: 0.0.0.0
server_port: 7000
reaper_interval: 30s
delete_scope: all
shard_count: 32
rate_limit: 500
rate_burst: 50
log_format: console
tables:
  - name: users
    families:
      - name: info
        max_versions: 10
      - name: session
        ttl: 1h
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "versiontable.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("file over defaults", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)

		cfg, err := Load(writeConfig(t, sampleConfig), nil)
		req.NoError(err)
		req.Equal("0.0.0.0", cfg.ServerAddress)
		req.Equal(7000, cfg.ServerPort)
		req.Equal(30*time.Second, cfg.ReaperInterval)
		req.Equal(32, cfg.ShardCount)
		req.Equal(500.0, cfg.RateLimit)
		req.True(cfg.ConsoleLogs())
		// unset keys keep their defaults
		req.Equal(10*time.Second, cfg.StopTimeout)

		scope, err := cfg.Scope()
		req.NoError(err)
		req.Equal(store.DeleteAllVersions, scope)

		req.Len(cfg.Tables, 1)
		req.Equal([]store.FamilySpec{
			{Name: "info", MaxVersions: 10},
			{Name: "session", TTL: time.Hour},
		}, cfg.Tables[0].FamilySpecs())
	})

	t.Run("set flags override the file", func(t *testing.T) {
		t.Parallel()
		req := require.New(t)

		fs := newFlags(t, "--port=8000", "--debug", "--delete-scope=latest")
		cfg, err := Load(writeConfig(t, sampleConfig), fs)
		req.NoError(err)
		req.Equal(8000, cfg.ServerPort)
		req.True(cfg.Debug)
		req.Equal("latest", cfg.DeleteScope)
		// flags left at their default do not clobber the file
		req.Equal("0.0.0.0", cfg.ServerAddress)
		req.Equal(32, cfg.ShardCount)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeConfig(t, "server_port: [1, 2"), nil)
		require.ErrorContains(t, err, "failed to parse config file")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		mutate  func(c *Config)
		wantErr string
	}{
		"defaults": {
			mutate: func(*Config) {},
		},
		"port out of range": {
			mutate:  func(c *Config) { c.ServerPort = 70000 },
			wantErr: "server_port 70000 out of range",
		},
		"bad scope": {
			mutate:  func(c *Config) { c.DeleteScope = "some" },
			wantErr: `delete_scope "some" must be latest or all`,
		},
		"bad log format": {
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: `log_format "xml" must be json or console`,
		},
		"cdc port out of range": {
			mutate:  func(c *Config) { c.CDCPort = -1 },
			wantErr: "cdc_port -1 out of range",
		},
		"table without families": {
			mutate:  func(c *Config) { c.Tables = []TableConfig{{Name: "t"}} },
			wantErr: "tables[0]: at least one family required",
		},
		"several problems": {
			mutate: func(c *Config) {
				c.ServerAddress = ""
				c.ReaperInterval = 0
			},
			wantErr: "server_address required\nreaper_interval must be positive",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.wantErr)
		})
	}
}
