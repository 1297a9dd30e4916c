package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/JesusPQ15/Transcription-page/internal/errors"
)

const (
	// DefaultPath is the transcription endpoint path
	DefaultPath = "/transcribe"
	// FileField is the multipart field carrying the audio
	FileField = "file"
)

// Response is the JSON body returned by a successful transcription
type Response struct {
	Filename string `json:"filename,omitempty"`
	Text     string `json:"text"`
}

// StatusError is returned when the server answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("Error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("Error %d", e.StatusCode)
}

// Is makes every StatusError match errors.ErrRequestFailed
func (e *StatusError) Is(target error) bool {
	return target == errors.ErrRequestFailed
}

// Client uploads audio files to a transcription server
type Client struct {
	baseURL    string
	path       string
	httpClient *http.Client
	headers    map[string]string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithPath overrides the endpoint path.
func WithPath(path string) Option {
	return func(c *Client) {
		c.path = path
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// New creates a client for the server at baseURL. An empty baseURL produces
// relative request URLs, which only make sense with a custom transport.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		path:    DefaultPath,
		headers: make(map[string]string),
	}

	for _, opt := range opts {
		opt(c)
	}

	// No timeout: the request resolves or fails exactly once, bounded only by ctx.
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}

	return c
}

// URL returns the full endpoint URL
func (c *Client) URL() string {
	return c.baseURL + "/" + strings.TrimLeft(c.path, "/")
}

// Transcribe sends audio as the single file field of a multipart POST and
// decodes the text from the JSON reply.
func (c *Client) Transcribe(ctx context.Context, filename string, audio io.Reader) (*Response, error) {
	body, contentType, err := createMultipartForm(filename, audio)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create multipart form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create HTTP request")
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Mark(fmt.Errorf("failed to send request: %w", err), errors.ErrRequestFailed)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Mark(fmt.Errorf("failed to read response: %w", err), errors.ErrRequestFailed)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, data)
	}

	return parseResponse(data)
}

// TranscribeFile opens path and uploads it under its base name
func (c *Client) TranscribeFile(ctx context.Context, path string) (*Response, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return c.Transcribe(ctx, filepath.Base(path), file)
}

func createMultipartForm(filename string, audio io.Reader) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(FileField, filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := io.Copy(part, audio); err != nil {
		return nil, "", fmt.Errorf("failed to copy file content: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

func parseResponse(data []byte) (*Response, error) {
	var payload struct {
		Filename string  `json:"filename"`
		Text     *string `json:"text"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Mark(fmt.Errorf("failed to parse JSON response: %w", err), errors.ErrResponseInvalid)
	}
	if payload.Text == nil {
		return nil, errors.Mark(fmt.Errorf("response has no text field"), errors.ErrResponseInvalid)
	}

	return &Response{Filename: payload.Filename, Text: *payload.Text}, nil
}

func newStatusError(status int, data []byte) *StatusError {
	statusErr := &StatusError{
		StatusCode: status,
		Body:       string(data),
	}

	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if json.Unmarshal(data, &payload) == nil {
		statusErr.Message = payload.Error
		if statusErr.Message == "" {
			statusErr.Message = payload.Detail
		}
	}

	return statusErr
}
