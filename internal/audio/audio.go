package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ProbeOutput is the subset of `ffprobe -print_format json` we read
type ProbeOutput struct {
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate int    `json:"sample_rate,string"`
		Channels   int    `json:"channels"`
	} `json:"streams"`
}

// Is16kHzWav reports whether the probe describes 16kHz PCM, the input whisper.cpp expects
func (p *ProbeOutput) Is16kHzWav() bool {
	for _, stream := range p.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 {
			return true
		}
	}
	return false
}

// ParseProbeOutput decodes ffprobe JSON output
func ParseProbeOutput(data []byte) (*ProbeOutput, error) {
	var probe ProbeOutput
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	return &probe, nil
}

// Converter wraps the ffmpeg and ffprobe binaries
type Converter struct {
	FFmpeg  string
	FFprobe string
}

// NewConverter returns a converter using the binaries found in PATH
func NewConverter() *Converter {
	return &Converter{FFmpeg: "ffmpeg", FFprobe: "ffprobe"}
}

// Available reports whether both binaries can be found
func (c *Converter) Available() bool {
	if _, err := exec.LookPath(c.FFmpeg); err != nil {
		return false
	}
	_, err := exec.LookPath(c.FFprobe)
	return err == nil
}

// Probe runs ffprobe on filePath
func (c *Converter) Probe(ctx context.Context, filePath string) (*ProbeOutput, error) {
	cmd := exec.CommandContext(ctx, c.FFprobe, "-v", "quiet", "-print_format", "json", "-show_streams", "-show_format", filePath)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe error: %w", err)
	}
	return ParseProbeOutput(output)
}

// ConvertTo16kHzWav converts inputFilePath to 16kHz mono PCM next to the input
// and returns the new path. A 16kHz WAV input is returned unchanged.
func (c *Converter) ConvertTo16kHzWav(ctx context.Context, inputFilePath string) (string, error) {
	probe, err := c.Probe(ctx, inputFilePath)
	if err == nil && probe.Is16kHzWav() {
		return inputFilePath, nil
	}

	outputFilePath := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "_16khz.wav"

	cmd := exec.CommandContext(ctx, c.FFmpeg, ConvertArgs(inputFilePath, outputFilePath)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}

	return outputFilePath, nil
}

// ConvertArgs builds the ffmpeg arguments for a 16kHz mono WAV conversion
func ConvertArgs(input, output string) []string {
	return []string{"-y", "-i", input, "-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", output}
}
