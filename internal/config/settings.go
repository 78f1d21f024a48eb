package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultOpenAIURL   = "https://api.openai.com/v1"
	DefaultOpenAIModel = "gpt-3.5-turbo"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// Settings holds the optional pipeline knobs kept next to config.json.
type Settings struct {
	LLM         LLMSettings         `yaml:"llm"`
	Downloader  DownloaderSettings  `yaml:"downloader"`
	Whisper     WhisperSettings     `yaml:"whisper"`
	FFmpeg      FFmpegSettings      `yaml:"ffmpeg"`
	Caption     CaptionSettings     `yaml:"caption"`
	Paths       PathsSettings       `yaml:"paths"`
	Logging     LoggingSettings     `yaml:"logging"`
	Performance PerformanceSettings `yaml:"performance"`
	Export      ExportSettings      `yaml:"export"`
}

type LLMSettings struct {
	Provider string        `yaml:"provider"`
	APIURL   string        `yaml:"api_url"`
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"`
}

type DownloaderSettings struct {
	Binary string `yaml:"binary"`
}

type WhisperSettings struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Threads    int    `yaml:"threads"`
}

type FFmpegSettings struct {
	Binary string `yaml:"binary"`
}

type CaptionSettings struct {
	Dedupe string `yaml:"dedupe"`
}

type PathsSettings struct {
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type PerformanceSettings struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type ExportSettings struct {
	Docx bool `yaml:"docx"`
}

// LoadSettings reads settings.yaml. A missing file yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse settings %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DefaultSettings returns validated settings with every default applied.
func DefaultSettings() *Settings {
	s := &Settings{}
	_ = s.Validate()
	return s
}

// Validate rejects unknown enum values and fills in defaults.
func (s *Settings) Validate() error {
	switch s.LLM.Provider {
	case "":
		s.LLM.Provider = ProviderOpenAI
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("llm.provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, s.LLM.Provider)
	}

	switch s.Caption.Dedupe {
	case "":
		s.Caption.Dedupe = "alternate"
	case "alternate", "adjacent":
	default:
		return fmt.Errorf("caption.dedupe must be \"alternate\" or \"adjacent\", got %q", s.Caption.Dedupe)
	}

	if s.LLM.Timeout < 0 {
		return fmt.Errorf("llm.timeout must not be negative")
	}
	if s.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	if s.LLM.Model == "" {
		if s.LLM.Provider == ProviderGemini {
			s.LLM.Model = DefaultGeminiModel
		} else {
			s.LLM.Model = DefaultOpenAIModel
		}
	}
	if s.LLM.APIURL == "" && s.LLM.Provider == ProviderOpenAI {
		s.LLM.APIURL = DefaultOpenAIURL
	}
	if s.Downloader.Binary == "" {
		s.Downloader.Binary = "yt-dlp"
	}
	if s.FFmpeg.Binary == "" {
		s.FFmpeg.Binary = "ffmpeg"
	}
	if s.Whisper.BinaryPath == "" {
		s.Whisper.BinaryPath = "whisper-cli"
	}
	if s.Whisper.Threads == 0 {
		s.Whisper.Threads = 4
	}
	if s.Paths.Output == "" {
		s.Paths.Output = "."
	}
	if s.Paths.Temp == "" {
		s.Paths.Temp = os.TempDir()
	}
	if s.Logging.Level == "" {
		s.Logging.Level = "info"
	}
	if s.Performance.MaxConcurrent == 0 {
		s.Performance.MaxConcurrent = 4
	}

	return nil
}
