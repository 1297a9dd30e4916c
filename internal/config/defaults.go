package config

import "time"

// Default configuration constants
const (
	DefaultEnvironment = "development"

	// Server defaults
	DefaultHost         = "0.0.0.0"
	DefaultHTTPPort     = "8000"
	DefaultReadTimeout  = 5 * time.Minute
	DefaultWriteTimeout = 10 * time.Minute
	DefaultIdleTimeout  = 2 * time.Minute
	DefaultMaxUploadMB  = 100

	// Engine defaults
	DefaultEngine               = "whispercpp"
	DefaultLanguage             = "es"
	DefaultWhisperCppBinary     = "whisper-cli"
	DefaultWhisperCppModel      = "models/ggml-small.bin"
	DefaultOpenAIModel          = "whisper-1"
	DefaultGeminiModel          = "gemini-2.5-flash"
	DefaultInferencePath        = "/inference"
	DefaultWhisperServerTimeout = 5 * time.Minute

	// Cache defaults
	DefaultCacheTTL = 24 * time.Hour

	// Storage defaults
	DefaultBucket = "transcriptor-audio"

	// History defaults
	DefaultHistoryDriver = "sqlite"
	DefaultSQLitePath    = "data/transcriptions.db"

	// Client defaults
	DefaultClientURL = "http://localhost:8000"
)

// Engine names
const (
	EngineWhisperCpp    = "whispercpp"
	EngineOpenAI        = "openai"
	EngineWhisperServer = "whisper_server"
	EngineGemini        = "gemini"
)

// Default returns a configuration populated with defaults only.
func Default() *Config {
	return &Config{
		Environment: DefaultEnvironment,
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultHTTPPort,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			IdleTimeout:  DefaultIdleTimeout,
			MaxUploadMB:  DefaultMaxUploadMB,
		},
		Engine: EngineConfig{
			Name:     DefaultEngine,
			Language: DefaultLanguage,
			WhisperCpp: WhisperCppConfig{
				BinaryPath: DefaultWhisperCppBinary,
				ModelPath:  DefaultWhisperCppModel,
			},
			OpenAI: OpenAIConfig{
				Model: DefaultOpenAIModel,
			},
			WhisperServer: WhisperServerConfig{
				InferencePath: DefaultInferencePath,
				Timeout:       DefaultWhisperServerTimeout,
			},
			Gemini: GeminiConfig{
				Model: DefaultGeminiModel,
			},
		},
		Cache: CacheConfig{
			TTL: DefaultCacheTTL,
		},
		Storage: StorageConfig{
			Bucket: DefaultBucket,
		},
		History: HistoryConfig{
			Driver: DefaultHistoryDriver,
			DSN:    DefaultSQLitePath,
		},
		Client: ClientConfig{
			BaseURL: DefaultClientURL,
		},
	}
}
