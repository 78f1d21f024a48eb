package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNoInput = errors.New("one of --url, --url-list, --watch or --config is required")

type options struct {
	url          string
	urlList      string
	debug        bool
	postProcess  bool
	configure    bool
	settingsPath string
	watchDir     string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "gptube",
		Short: "Summarize videos from their auto-generated captions",
		Long: `gptube downloads a video's auto-generated captions with yt-dlp, extracts the
caption text and asks a language model to summarize it. Each URL produces a
Result-<title>.<id>.<lang>.summary file.

Run "gptube --config" once to store your API key, caption language and prompt.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.url, "url", "u", "", "video URL to summarize")
	flags.StringVarP(&opts.urlList, "url-list", "l", "", "file holding comma-separated video URLs")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "print debug traces")
	flags.BoolVarP(&opts.postProcess, "post-process", "p", false, "refine the summary interactively (single URL only)")
	flags.BoolVarP(&opts.configure, "config", "c", false, "create or overwrite the configuration and exit")
	flags.StringVar(&opts.settingsPath, "settings", "", "settings file (default $HOME/.config/gptube-cli/settings.yaml)")
	flags.StringVarP(&opts.watchDir, "watch", "w", "", "process every URL list dropped into this directory")

	cmd.MarkFlagsMutuallyExclusive("url", "url-list", "config", "watch")
	cmd.MarkFlagsMutuallyExclusive("post-process", "url-list", "config", "watch")

	return cmd
}

func (o options) validate() error {
	if o.postProcess && o.url == "" {
		return fmt.Errorf("--post-process requires --url")
	}
	if !o.configure && o.url == "" && o.urlList == "" && o.watchDir == "" {
		return errNoInput
	}
	return nil
}
