package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")

	err := Wrap(cause, "request failed")
	assert.EqualError(t, err, "request failed: connection refused")
	assert.Same(t, cause, err.(*Error).Unwrap())
	assert.True(t, Is(err, ErrRequestFailed))

	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Wrapf(nil, "ignored %d", 1))
}

func TestMark(t *testing.T) {
	cause := fmt.Errorf("status 500")

	err := Mark(cause, ErrRequestFailed)
	assert.EqualError(t, err, "status 500")
	assert.True(t, Is(err, ErrRequestFailed))
	assert.True(t, Is(err, cause))
	assert.False(t, Is(err, ErrResponseInvalid))

	assert.Nil(t, Mark(nil, ErrRequestFailed))
}

func TestIsComparesMessages(t *testing.T) {
	assert.True(t, Is(New("Formato no soportado"), ErrUnsupportedFormat))
	assert.False(t, Is(New("other"), ErrUnsupportedFormat))
	assert.Equal(t, "request failed", ErrRequestFailed.Message())
}

func TestFieldErrors(t *testing.T) {
	err := RequiredField("base_url")
	assert.EqualError(t, err, "base_url is required")
	assert.True(t, Is(err, ErrMissingConfig))

	err = InvalidField("engine", "unknown")
	assert.EqualError(t, err, "engine is invalid: unknown")
	assert.True(t, Is(err, ErrInvalidConfig))
	assert.False(t, Is(err, ErrMissingConfig))
}

func TestIsValidationError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"unsupported format", ErrUnsupportedFormat, true},
		{"wrapped empty upload", Wrap(ErrEmptyUpload, "upload"), true},
		{"required field", RequiredField("base_url"), true},
		{"invalid field", InvalidField("engine", "unknown"), true},
		{"missing api key", Mark(New("OpenAI API key is required"), ErrMissingAPIKey), true},
		{"network", ErrRequestFailed, false},
		{"message mentions invalid", Wrap(ErrRequestFailed, "invalid response from server"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidationError(tc.err))
		})
	}
}
