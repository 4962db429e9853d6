package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultCLILogLevel keeps imgresolve quiet unless asked otherwise.
const DefaultCLILogLevel = "warn"

// writeTimeoutSlack is the headroom kept above the worst-case provider chain so
// the inline fallback still reaches the client.
const writeTimeoutSlack = 30 * time.Second

// Placeholder values shipped in example env files. They are treated as unset.
var placeholderTokens = map[string]bool{
	"your_pinata_jwt_here":         true,
	"your_web3_storage_token_here": true,
}

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	CORS    CORSConfig
	Pinning PinningConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	CLILevel string `mapstructure:"cli_level"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PinningConfig holds credentials and endpoints for every remote upload strategy.
// An empty credential means the provider is not configured.
type PinningConfig struct {
	Pinata      PinataConfig
	Web3Storage Web3StorageConfig
	Filebase    FilebaseConfig
}

// PinataConfig holds settings for the primary pinning provider.
type PinataConfig struct {
	JWT         string `mapstructure:"jwt"`
	Endpoint    string `mapstructure:"endpoint"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Web3StorageConfig holds settings for the secondary pinning provider.
type Web3StorageConfig struct {
	Token       string `mapstructure:"token"`
	Endpoint    string `mapstructure:"endpoint"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// FilebaseConfig holds settings for the optional S3-compatible pinning provider.
type FilebaseConfig struct {
	Bucket      string `mapstructure:"bucket"`
	Endpoint    string `mapstructure:"endpoint"`
	Region      string `mapstructure:"region"`
	AccessKey   string `mapstructure:"access_key"`
	SecretKey   string `mapstructure:"secret_key"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Enabled reports whether every setting needed to reach Filebase is present.
func (f *FilebaseConfig) Enabled() bool {
	return f.Bucket != "" && f.AccessKey != "" && f.SecretKey != ""
}

// ChainTimeout is the worst-case time spent in remote providers before the
// inline fallback runs.
func (p *PinningConfig) ChainTimeout() time.Duration {
	total := Timeout(p.Pinata.TimeoutSecs) + Timeout(p.Web3Storage.TimeoutSecs)
	if p.Filebase.Enabled() {
		total += Timeout(p.Filebase.TimeoutSecs)
	}
	return total
}

// Timeout converts TimeoutSecs to a duration, defaulting to 30s.
func Timeout(secs int) time.Duration {
	if secs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(secs) * time.Second
}

// Load reads configuration from environment variables with the DEGEN_ prefix.
// If DEGEN_CONFIG_FILE is set, that file is read first and env vars override it.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("DEGEN_CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.cli_level", DefaultCLILogLevel)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Pinning defaults
	v.SetDefault("pinning.pinata.jwt", "")
	v.SetDefault("pinning.pinata.endpoint", "")
	v.SetDefault("pinning.pinata.timeout_secs", 30)
	v.SetDefault("pinning.web3storage.token", "")
	v.SetDefault("pinning.web3storage.endpoint", "")
	v.SetDefault("pinning.web3storage.timeout_secs", 30)
	v.SetDefault("pinning.filebase.bucket", "")
	v.SetDefault("pinning.filebase.endpoint", "https://s3.filebase.com")
	v.SetDefault("pinning.filebase.region", "us-east-1")
	v.SetDefault("pinning.filebase.access_key", "")
	v.SetDefault("pinning.filebase.secret_key", "")
	v.SetDefault("pinning.filebase.timeout_secs", 60)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                      "DEGEN_SERVER_PORT",
		"server.read_timeout":              "DEGEN_SERVER_READ_TIMEOUT",
		"server.write_timeout":             "DEGEN_SERVER_WRITE_TIMEOUT",
		"server.environment":               "DEGEN_SERVER_ENVIRONMENT",
		"log.level":                        "DEGEN_LOG_LEVEL",
		"log.format":                       "DEGEN_LOG_FORMAT",
		"log.cli_level":                    "DEGEN_LOG_CLI_LEVEL",
		"cors.allowed_origins":             "DEGEN_CORS_ALLOWED_ORIGINS",
		"pinning.pinata.jwt":               "DEGEN_PINNING_PINATA_JWT",
		"pinning.pinata.endpoint":          "DEGEN_PINNING_PINATA_ENDPOINT",
		"pinning.pinata.timeout_secs":      "DEGEN_PINNING_PINATA_TIMEOUT_SECS",
		"pinning.web3storage.token":        "DEGEN_PINNING_WEB3STORAGE_TOKEN",
		"pinning.web3storage.endpoint":     "DEGEN_PINNING_WEB3STORAGE_ENDPOINT",
		"pinning.web3storage.timeout_secs": "DEGEN_PINNING_WEB3STORAGE_TIMEOUT_SECS",
		"pinning.filebase.bucket":          "DEGEN_PINNING_FILEBASE_BUCKET",
		"pinning.filebase.endpoint":        "DEGEN_PINNING_FILEBASE_ENDPOINT",
		"pinning.filebase.region":          "DEGEN_PINNING_FILEBASE_REGION",
		"pinning.filebase.access_key":      "DEGEN_PINNING_FILEBASE_ACCESS_KEY",
		"pinning.filebase.secret_key":      "DEGEN_PINNING_FILEBASE_SECRET_KEY",
		"pinning.filebase.timeout_secs":    "DEGEN_PINNING_FILEBASE_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DEGEN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DEGEN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:    v.GetString("log.level"),
		Format:   v.GetString("log.format"),
		CLILevel: v.GetString("log.cli_level"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Pinning = PinningConfig{
		Pinata: PinataConfig{
			JWT:         credential(v.GetString("pinning.pinata.jwt")),
			Endpoint:    v.GetString("pinning.pinata.endpoint"),
			TimeoutSecs: v.GetInt("pinning.pinata.timeout_secs"),
		},
		Web3Storage: Web3StorageConfig{
			Token:       credential(v.GetString("pinning.web3storage.token")),
			Endpoint:    v.GetString("pinning.web3storage.endpoint"),
			TimeoutSecs: v.GetInt("pinning.web3storage.timeout_secs"),
		},
		Filebase: FilebaseConfig{
			Bucket:      v.GetString("pinning.filebase.bucket"),
			Endpoint:    v.GetString("pinning.filebase.endpoint"),
			Region:      v.GetString("pinning.filebase.region"),
			AccessKey:   credential(v.GetString("pinning.filebase.access_key")),
			SecretKey:   credential(v.GetString("pinning.filebase.secret_key")),
			TimeoutSecs: v.GetInt("pinning.filebase.timeout_secs"),
		},
	}

	// A write deadline shorter than the provider chain would drop the inline result.
	if minWrite := cfg.Pinning.ChainTimeout() + writeTimeoutSlack; cfg.Server.WriteTimeout < minWrite {
		cfg.Server.WriteTimeout = minWrite
	}

	return cfg, nil
}

// credential trims a secret and maps example placeholders to empty.
func credential(raw string) string {
	raw = strings.TrimSpace(raw)
	if placeholderTokens[raw] {
		return ""
	}
	return raw
}
