package config

import (
	"github.com/cockroachdb/errors"
	"github.com/litetable/versiontable/internal/store"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

const (
	// DefaultFileName is looked up in the working directory when no file is given.
	DefaultFileName = "versiontable.yaml"

	logFormatJSON    = "json"
	logFormatConsole = "console"
)

// Config is the process configuration of the VersionTable server.
type Config struct {
	ServerAddress  string        `yaml:"server_address"`
	ServerPort     int           `yaml:"server_port"`
	ReaperInterval time.Duration `yaml:"reaper_interval"`
	DeleteScope    string        `yaml:"delete_scope"`
	ShardCount     int           `yaml:"shard_count"`
	RateLimit      float64       `yaml:"rate_limit"`
	RateBurst      int           `yaml:"rate_burst"`
	Debug          bool          `yaml:"debug"`
	LogFormat      string        `yaml:"log_format"`
	StopTimeout    time.Duration `yaml:"stop_timeout"`
	// CDCPort of 0 disables the change stream listener.
	CDCAddress string `yaml:"cdc_address"`
	CDCPort    int    `yaml:"cdc_port"`
	// TLS is enabled when both files are set.
	TLSCertFile string `yaml:"tls_cert_file"`
	TLSKeyFile  string `yaml:"tls_key_file"`
	// Tables are created at startup unless they already exist.
	Tables []TableConfig `yaml:"tables"`
}

type TableConfig struct {
	Name     string         `yaml:"name"`
	Families []FamilyConfig `yaml:"families"`
}

type FamilyConfig struct {
	Name        string        `yaml:"name"`
	MaxVersions int           `yaml:"max_versions"`
	TTL         time.Duration `yaml:"ttl"`
}

// Default returns the configuration used for anything the file and flags leave unset.
func Default() *Config {
	return &Config{
		ServerAddress:  "127.0.0.1",
		ServerPort:     9443,
		ReaperInterval: time.Minute,
		DeleteScope:    "latest",
		ShardCount:     16,
		LogFormat:      logFormatJSON,
		StopTimeout:    10 * time.Second,
		CDCAddress:     "127.0.0.1",
	}
}

// RegisterFlags adds a flag for every scalar setting. Flags override the file only when set.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("config", "", "path to the YAML configuration file (default ./"+DefaultFileName+" if present)")
	fs.String("address", d.ServerAddress, "address the gRPC server binds to")
	fs.Int("port", d.ServerPort, "port the gRPC server listens on")
	fs.Duration("reaper-interval", d.ReaperInterval, "how often expired cells are purged")
	fs.String("delete-scope", d.DeleteScope, "default column delete scope: latest or all")
	fs.Int("shards", d.ShardCount, "row shards per table")
	fs.Float64("rate-limit", 0, "requests per second admitted by the server, 0 disables limiting")
	fs.Int("rate-burst", 0, "burst size of the rate limiter")
	fs.Bool("debug", false, "enable debug logging")
	fs.String("log-format", d.LogFormat, "log output: json or console")
	fs.Duration("stop-timeout", d.StopTimeout, "how long shutdown waits for dependencies")
	fs.String("cdc-address", d.CDCAddress, "address the change stream binds to")
	fs.Int("cdc-port", 0, "port of the change stream, 0 disables it")
	fs.String("tls-cert", "", "PEM certificate file of the gRPC server")
	fs.String("tls-key", "", "PEM key file of the gRPC server")
}

// Load reads the file at path (or the default file when path is empty and it exists) over
// the defaults, then applies every flag the user set.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFileName); err == nil {
			path = DefaultFileName
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		if err := cfg.decode(data); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config file %s", path)
		}
	}

	if fs != nil {
		if err := cfg.applyFlags(fs); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	return yaml.Unmarshal(data, c)
}

func (c *Config) applyFlags(fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "address":
			c.ServerAddress, err = fs.GetString(f.Name)
		case "port":
			c.ServerPort, err = fs.GetInt(f.Name)
		case "reaper-interval":
			c.ReaperInterval, err = fs.GetDuration(f.Name)
		case "delete-scope":
			c.DeleteScope, err = fs.GetString(f.Name)
		case "shards":
			c.ShardCount, err = fs.GetInt(f.Name)
		case "rate-limit":
			c.RateLimit, err = fs.GetFloat64(f.Name)
		case "rate-burst":
			c.RateBurst, err = fs.GetInt(f.Name)
		case "debug":
			c.Debug, err = fs.GetBool(f.Name)
		case "log-format":
			c.LogFormat, err = fs.GetString(f.Name)
		case "stop-timeout":
			c.StopTimeout, err = fs.GetDuration(f.Name)
		case "cdc-address":
			c.CDCAddress, err = fs.GetString(f.Name)
		case "cdc-port":
			c.CDCPort, err = fs.GetInt(f.Name)
		case "tls-cert":
			c.TLSCertFile, err = fs.GetString(f.Name)
		case "tls-key":
			c.TLSKeyFile, err = fs.GetString(f.Name)
		}
	})
	return errors.Wrap(err, "invalid flag")
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errGrp []error
	if c.ServerAddress == "" {
		errGrp = append(errGrp, errors.New("server_address required"))
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errGrp = append(errGrp, errors.Newf("server_port %d out of range", c.ServerPort))
	}
	if c.ReaperInterval <= 0 {
		errGrp = append(errGrp, errors.New("reaper_interval must be positive"))
	}
	if _, err := c.Scope(); err != nil {
		errGrp = append(errGrp, err)
	}
	if c.ShardCount < 0 {
		errGrp = append(errGrp, errors.New("shard_count cannot be negative"))
	}
	if c.RateLimit < 0 || c.RateBurst < 0 {
		errGrp = append(errGrp, errors.New("rate_limit and rate_burst cannot be negative"))
	}
	if c.LogFormat != logFormatJSON && c.LogFormat != logFormatConsole {
		errGrp = append(errGrp, errors.Newf("log_format %q must be json or console", c.LogFormat))
	}
	if c.StopTimeout <= 0 {
		errGrp = append(errGrp, errors.New("stop_timeout must be positive"))
	}
	if c.CDCPort < 0 || c.CDCPort > 65535 {
		errGrp = append(errGrp, errors.Newf("cdc_port %d out of range", c.CDCPort))
	}
	if c.CDCPort > 0 && c.CDCAddress == "" {
		errGrp = append(errGrp, errors.New("cdc_address required when cdc_port is set"))
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		errGrp = append(errGrp, errors.New("tls_cert_file and tls_key_file must be set together"))
	}
	for i, t := range c.Tables {
		if t.Name == "" {
			errGrp = append(errGrp, errors.Newf("tables[%d]: name required", i))
		}
		if len(t.Families) == 0 {
			errGrp = append(errGrp, errors.Newf("tables[%d]: at least one family required", i))
		}
	}
	return errors.Join(errGrp...)
}

// Scope is the parsed delete_scope setting.
func (c *Config) Scope() (store.DeleteScope, error) {
	scope, err := store.ParseDeleteScope(c.DeleteScope)
	if err != nil {
		return store.DeleteScopeDefault, errors.Newf("delete_scope %q must be latest or all", c.DeleteScope)
	}
	return scope, nil
}

// ConsoleLogs reports whether logs should be human readable rather than JSON.
func (c *Config) ConsoleLogs() bool {
	return c.LogFormat == logFormatConsole
}

// FamilySpecs converts the configured families of a table for the store.
func (t TableConfig) FamilySpecs() []store.FamilySpec {
	specs := make([]store.FamilySpec, len(t.Families))
	for i, f := range t.Families {
		specs[i] = store.FamilySpec{
			Name:        f.Name,
			MaxVersions: f.MaxVersions,
			TTL:         f.TTL,
		}
	}
	return specs
}
