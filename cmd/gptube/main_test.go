package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/gptube/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const setupAnswers = "sk-test\nen\nSummarize this video\nfalse\n"

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.APIKeyEnv, "")
	return home
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		wantErr string
	}{
		{name: "url", opts: options{url: "https://youtu.be/x"}},
		{name: "url with post-process", opts: options{url: "https://youtu.be/x", postProcess: true}},
		{name: "url list", opts: options{urlList: "list.txt"}},
		{name: "watch", opts: options{watchDir: "inbox"}},
		{name: "config", opts: options{configure: true}},
		{name: "nothing", opts: options{}, wantErr: errNoInput.Error()},
		{name: "post-process alone", opts: options{postProcess: true}, wantErr: "--post-process requires --url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestRootCmdRejectsConflictingFlags(t *testing.T) {
	isolateHome(t)

	tests := [][]string{
		{"-u", "https://youtu.be/x", "-l", "list.txt"},
		{"-c", "-u", "https://youtu.be/x"},
		{"-p", "-l", "list.txt"},
		{"-w", "inbox", "-l", "list.txt"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetArgs(args)
			cmd.SetIn(strings.NewReader(""))
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			assert.Error(t, cmd.ExecuteContext(context.Background()))
		})
	}
}

func TestRootCmdConfigure(t *testing.T) {
	home := isolateHome(t)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config"})
	cmd.SetIn(strings.NewReader(setupAnswers))
	cmd.SetOut(&out)

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Please enter your OpenAI API key")

	cfg, err := config.Load(filepath.Join(home, ".config", "gptube-cli", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		APIKey:       "sk-test",
		SubLang:      "en",
		CustomPrompt: "Summarize this video",
		AllowWhisper: "false",
	}, cfg)
}

func TestRunWithoutConfigRunsSetup(t *testing.T) {
	home := isolateHome(t)

	var out bytes.Buffer
	err := run(context.Background(), options{url: "https://youtu.be/x"}, strings.NewReader(setupAnswers), &out)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), "No configuration file found.\n"))
	_, err = os.Stat(filepath.Join(home, ".config", "gptube-cli", "config.json"))
	assert.NoError(t, err)
}

func TestRunSetupFailsOnShortInput(t *testing.T) {
	isolateHome(t)

	err := run(context.Background(), options{configure: true}, strings.NewReader("sk-test\n"), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunMissingURLList(t *testing.T) {
	home := isolateHome(t)

	path, err := config.DefaultPath()
	require.NoError(t, err)
	require.NoError(t, config.Save(path, &config.Config{APIKey: "sk-test", SubLang: "en", CustomPrompt: "Summarize"}))

	err = run(context.Background(), options{urlList: filepath.Join(home, "missing.txt")}, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read url list")
}

func TestRunInvalidSettings(t *testing.T) {
	home := isolateHome(t)

	path, err := config.DefaultPath()
	require.NoError(t, err)
	require.NoError(t, config.Save(path, &config.Config{APIKey: "sk-test", SubLang: "en"}))

	settingsPath := filepath.Join(home, "settings.yaml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("llm:\n  provider: nope\n"), 0644))

	err = run(context.Background(), options{url: "https://youtu.be/x", settingsPath: settingsPath}, strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, err)
}
