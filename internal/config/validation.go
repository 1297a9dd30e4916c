package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/JesusPQ15/Transcription-page/internal/errors"
)

var validate = validator.New()

// Validate checks struct tags first, then the settings the selected engine needs.
// Errors match errors.ErrInvalidConfig, errors.ErrMissingConfig or errors.ErrMissingAPIKey.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(validationErrs))
			for _, fieldError := range validationErrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fieldError.Namespace(), fieldError.Tag()))
			}
			return errors.Mark(fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", ")), errors.ErrInvalidConfig)
		}
		return errors.Mark(fmt.Errorf("invalid configuration: %w", err), errors.ErrInvalidConfig)
	}

	switch c.Engine.Name {
	case EngineWhisperCpp:
		if c.Engine.WhisperCpp.BinaryPath == "" {
			return missing("whispercpp engine requires binary_path (WHISPER_CPP_BINARY)")
		}
		if c.Engine.WhisperCpp.ModelPath == "" {
			return missing("whispercpp engine requires model_path (WHISPER_CPP_MODEL)")
		}
	case EngineOpenAI:
		if err := ValidateAPIKey(c.Engine.OpenAI.APIKey, "OpenAI"); err != nil {
			return err
		}
	case EngineGemini:
		if err := ValidateAPIKey(c.Engine.Gemini.APIKey, "Gemini"); err != nil {
			return err
		}
	case EngineWhisperServer:
		if c.Engine.WhisperServer.BaseURL == "" {
			return missing("whisper_server engine requires base_url (WHISPER_SERVER_URL)")
		}
	}

	if c.History.Driver == "postgres" && c.History.DSN == "" {
		return missing("postgres history requires dsn (DATABASE_URL)")
	}

	return nil
}

func missing(message string) error {
	return errors.Mark(errors.New(message), errors.ErrMissingConfig)
}

// ValidateAPIKey validates API key format. An empty key matches
// errors.ErrMissingAPIKey, a malformed one errors.ErrInvalidConfig.
func ValidateAPIKey(apiKey string, keyType string) error {
	if apiKey == "" {
		return errors.Mark(fmt.Errorf("%s API key is required", keyType), errors.ErrMissingAPIKey)
	}

	field := keyType + " API key"
	switch keyType {
	case "OpenAI":
		if !strings.HasPrefix(apiKey, "sk-") {
			return errors.Mark(errors.InvalidField(field, "invalid OpenAI API key format: must start with 'sk-'"), errors.ErrInvalidConfig)
		}
		if len(apiKey) < 20 {
			return errors.Mark(errors.InvalidField(field, "invalid OpenAI API key format: too short"), errors.ErrInvalidConfig)
		}
	case "Gemini":
		if !strings.HasPrefix(apiKey, "AIza") {
			return errors.Mark(errors.InvalidField(field, "invalid Gemini API key format: must start with 'AIza'"), errors.ErrInvalidConfig)
		}
		if len(apiKey) < 30 {
			return errors.Mark(errors.InvalidField(field, "invalid Gemini API key format: too short"), errors.ErrInvalidConfig)
		}
	}

	return nil
}
