package transcriber

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/nguyentantai21042004/gptube/internal/config"
	"github.com/nguyentantai21042004/gptube/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSRT = "1\n00:00:00,000 --> 00:00:02,000\nhello from whisper\n"

type fakeExecutor struct {
	names []string
	fail  string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.names = append(f.names, name)
	if name == f.fail {
		return "", errors.New("exit status 1")
	}
	if name == "whisper-cli" {
		for i, a := range args {
			if a == "--output-file" {
				return "", os.WriteFile(args[i+1]+".srt", []byte(sampleSRT), 0644)
			}
		}
	}
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func testSettings(t *testing.T) *config.Settings {
	s := config.DefaultSettings()
	s.Paths.Temp = t.TempDir()
	s.Whisper.ModelPath = "models/ggml-base.bin"
	return s
}

func TestTranscribe(t *testing.T) {
	exec := &fakeExecutor{}
	tr := New(testSettings(t), exec, logger.NewNop())

	got, err := tr.Transcribe(context.Background(), "https://youtu.be/x", "en")
	require.NoError(t, err)
	assert.Equal(t, sampleSRT, got)
	assert.Equal(t, []string{"yt-dlp", "ffmpeg", "whisper-cli"}, exec.names)
}

func TestTranscribeStepFailure(t *testing.T) {
	for _, step := range []string{"yt-dlp", "ffmpeg", "whisper-cli"} {
		t.Run(step, func(t *testing.T) {
			tr := New(testSettings(t), &fakeExecutor{fail: step}, logger.NewNop())
			_, err := tr.Transcribe(context.Background(), "u", "en")
			assert.Error(t, err)
		})
	}
}

func TestTranscribeRequiresModel(t *testing.T) {
	s := testSettings(t)
	s.Whisper.ModelPath = ""

	_, err := New(s, &fakeExecutor{}, logger.NewNop()).Transcribe(context.Background(), "u", "en")
	assert.ErrorContains(t, err, "whisper.model_path")
}
