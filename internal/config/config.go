package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration
type Config struct {
	Environment string        `yaml:"environment" validate:"oneof=development production"`
	Server      ServerConfig  `yaml:"server"`
	Engine      EngineConfig  `yaml:"engine"`
	Cache       CacheConfig   `yaml:"cache"`
	Storage     StorageConfig `yaml:"storage"`
	History     HistoryConfig `yaml:"history"`
	Client      ClientConfig  `yaml:"client"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port" validate:"required,numeric"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	MaxUploadMB  int64         `yaml:"max_upload_mb" validate:"gte=1,lte=2048"`
}

// EngineConfig selects and configures the transcription engine
type EngineConfig struct {
	Name          string              `yaml:"name" validate:"required,oneof=whispercpp openai whisper_server gemini"`
	Language      string              `yaml:"language"`
	WhisperCpp    WhisperCppConfig    `yaml:"whispercpp"`
	OpenAI        OpenAIConfig        `yaml:"openai"`
	WhisperServer WhisperServerConfig `yaml:"whisper_server"`
	Gemini        GeminiConfig        `yaml:"gemini"`
}

// WhisperCppConfig configures the local whisper.cpp binary
type WhisperCppConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Threads    int    `yaml:"threads" validate:"gte=0,lte=64"`
}

// OpenAIConfig configures the OpenAI transcription API
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
	Model   string `yaml:"model"`
}

// WhisperServerConfig configures a remote whisper.cpp server
type WhisperServerConfig struct {
	BaseURL       string        `yaml:"base_url" validate:"omitempty,url"`
	InferencePath string        `yaml:"inference_path"`
	Timeout       time.Duration `yaml:"timeout"`
}

// GeminiConfig configures the Gemini API
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// CacheConfig configures the redis result cache. Empty RedisURL disables it.
type CacheConfig struct {
	RedisURL string        `yaml:"redis_url"`
	TTL      time.Duration `yaml:"ttl"`
}

// StorageConfig configures the audio archive. Empty Endpoint disables it.
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket" validate:"required_with=Endpoint"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// HistoryConfig configures the transcription history store
type HistoryConfig struct {
	Driver string `yaml:"driver" validate:"oneof=sqlite postgres none"`
	DSN    string `yaml:"dsn"`
}

// ClientConfig configures the upload client used by the terminal front end
type ClientConfig struct {
	BaseURL string `yaml:"base_url" validate:"required,url"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// MaxUploadBytes returns the upload limit in bytes
func (s ServerConfig) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}

// IsProduction reports whether the configuration targets production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order of precedence (environment wins).
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		configPath = os.ExpandEnv(configPath)
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Environment, "TRANSCRIPTOR_ENV")
	setString(&c.Server.Host, "TRANSCRIPTOR_HOST")
	setString(&c.Server.Port, "PORT")
	setString(&c.Server.Port, "TRANSCRIPTOR_PORT")
	if err := setInt64(&c.Server.MaxUploadMB, "TRANSCRIPTOR_MAX_UPLOAD_MB"); err != nil {
		return err
	}

	setString(&c.Engine.Name, "TRANSCRIPTOR_ENGINE")
	setString(&c.Engine.Language, "TRANSCRIPTOR_LANGUAGE")
	setString(&c.Engine.WhisperCpp.BinaryPath, "WHISPER_CPP_BINARY")
	setString(&c.Engine.WhisperCpp.ModelPath, "WHISPER_CPP_MODEL")
	setString(&c.Engine.OpenAI.APIKey, "OPENAI_API_KEY")
	setString(&c.Engine.OpenAI.BaseURL, "OPENAI_BASE_URL")
	setString(&c.Engine.WhisperServer.BaseURL, "WHISPER_SERVER_URL")
	setString(&c.Engine.Gemini.APIKey, "GEMINI_API_KEY")

	setString(&c.Cache.RedisURL, "REDIS_URL")

	setString(&c.Storage.Endpoint, "MINIO_ENDPOINT")
	setString(&c.Storage.AccessKey, "MINIO_ACCESS_KEY")
	setString(&c.Storage.SecretKey, "MINIO_SECRET_KEY")
	setString(&c.Storage.Bucket, "MINIO_BUCKET")
	if v, ok := lookup("MINIO_USE_SSL"); ok {
		c.Storage.UseSSL = v == "true"
	}

	setString(&c.History.Driver, "HISTORY_DRIVER")
	if v, ok := lookup("DATABASE_URL"); ok {
		c.History.DSN = v
		if c.History.Driver == DefaultHistoryDriver && strings.HasPrefix(v, "postgres") {
			c.History.Driver = "postgres"
		}
	}

	setString(&c.Client.BaseURL, "TRANSCRIPTOR_URL")
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func setString(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

func setInt64(dst *int64, key string) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}
