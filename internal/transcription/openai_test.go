package transcription

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAI {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	clientConfig := openai.DefaultConfig("sk-test-1234567890abcdef")
	clientConfig.BaseURL = server.URL + "/v1"
	return NewOpenAI(openai.NewClientWithConfig(clientConfig), "", "es")
}

func TestOpenAITranscribe(t *testing.T) {
	o := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test-1234567890abcdef", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, openai.Whisper1, r.FormValue("model"))
		assert.Equal(t, "es", r.FormValue("language"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "nota.mp3", header.Filename)
		assert.Equal(t, "ID3-audio", string(data))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"text":"  hola mundo  "}`)
	})

	text, err := o.Transcribe(context.Background(), Audio{Filename: "nota.mp3", Ext: "mp3", Data: []byte("ID3-audio")})
	require.NoError(t, err)
	assert.Equal(t, "hola mundo", text)
	assert.Equal(t, "openai", o.Name())
}

func TestOpenAITranscribeError(t *testing.T) {
	o := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
	})

	_, err := o.Transcribe(context.Background(), Audio{Filename: "nota.mp3", Ext: "mp3", Data: []byte("ID3")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "createTranscription failed")
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}
