package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nguyentantai21042004/gptube/internal/batch"
	"github.com/nguyentantai21042004/gptube/internal/caption"
	"github.com/nguyentantai21042004/gptube/internal/config"
	"github.com/nguyentantai21042004/gptube/internal/downloader"
	"github.com/nguyentantai21042004/gptube/internal/logger"
	"github.com/nguyentantai21042004/gptube/internal/processor"
	"github.com/nguyentantai21042004/gptube/internal/refiner"
	"github.com/nguyentantai21042004/gptube/internal/summarizer"
	"github.com/nguyentantai21042004/gptube/internal/transcriber"
	"github.com/nguyentantai21042004/gptube/internal/watcher"
	"github.com/nguyentantai21042004/gptube/internal/writer"
	"github.com/nguyentantai21042004/gptube/pkg/executor"
)

func run(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	if err := opts.validate(); err != nil {
		return err
	}

	configPath, err := config.DefaultPath()
	if err != nil {
		return err
	}

	settingsPath := opts.settingsPath
	if settingsPath == "" {
		if settingsPath, err = config.DefaultSettingsPath(); err != nil {
			return err
		}
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	level := settings.Logging.Level
	if opts.debug {
		level = "debug"
	}
	log := logger.New(logger.Options{Level: level, File: settings.Logging.File, Output: out})

	if opts.configure {
		return configure(ctx, configPath, in, out, log)
	}

	log.Debug(ctx, "Reading configuration file: %s", configPath)
	cfg, err := config.Load(configPath)
	if errors.Is(err, config.ErrNotFound) {
		fmt.Fprintln(out, "No configuration file found.")
		return configure(ctx, configPath, in, out, log)
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnv()
	log.Debug(ctx, "Config OK")

	p := &pipeline{cfg: cfg, settings: settings, log: log, in: in, out: out}
	switch {
	case opts.url != "":
		return p.single(ctx, opts.url, opts.postProcess)
	case opts.urlList != "":
		return p.list(ctx, opts.urlList)
	default:
		return p.watch(ctx, opts.watchDir)
	}
}

func configure(ctx context.Context, path string, in io.Reader, out io.Writer, log logger.Logger) error {
	log.Debug(ctx, "Creating configuration file...")

	cfg, err := config.Prompt(in, out)
	if err != nil {
		return fmt.Errorf("configure: %w", err)
	}

	log.Debug(ctx, "Creating config file at: %s", path)
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	log.Info(ctx, "Configuration saved to %s", path)
	return nil
}

// pipeline wires the processor stack for one invocation.
type pipeline struct {
	cfg      *config.Config
	settings *config.Settings
	log      logger.Logger
	in       io.Reader
	out      io.Writer
}

func (p *pipeline) newSummarizer() (summarizer.Summarizer, error) {
	sum, err := summarizer.New(p.settings.LLM, p.cfg.APIKey, p.log)
	if err != nil {
		return nil, fmt.Errorf("create summarizer: %w", err)
	}
	return sum, nil
}

func (p *pipeline) newProcessor(sum summarizer.Summarizer, extra ...processor.Option) (processor.Processor, error) {
	strategy, err := caption.ParseStrategy(p.settings.Caption.Dedupe)
	if err != nil {
		return nil, err
	}

	exec := executor.New()
	deps := processor.Deps{
		Downloader: downloader.New(p.settings.Downloader.Binary, p.settings.Paths.Temp, exec, p.log),
		Summarizer: sum,
		Writer:     writer.New(p.settings.Paths.Output, p.settings.Export.Docx, p.log),
		Logger:     p.log,
	}
	if p.cfg.WhisperAllowed() {
		deps.Transcriber = transcriber.New(p.settings, exec, p.log)
	}

	opts := append([]processor.Option{
		processor.WithStrategy(strategy),
		processor.WithOutput(p.out),
	}, extra...)

	return processor.New(p.cfg, deps, opts...), nil
}

func (p *pipeline) single(ctx context.Context, url string, postProcess bool) error {
	sum, err := p.newSummarizer()
	if err != nil {
		return err
	}

	var opts []processor.Option
	if postProcess {
		opts = append(opts, processor.WithRefiner(refiner.New(p.in, p.out, sum, p.log)))
	}

	proc, err := p.newProcessor(sum, opts...)
	if err != nil {
		return err
	}

	_, err = proc.Process(ctx, url)
	return err
}

func (p *pipeline) runner() (*batch.Runner, error) {
	sum, err := p.newSummarizer()
	if err != nil {
		return nil, err
	}
	proc, err := p.newProcessor(sum, processor.WithListMode())
	if err != nil {
		return nil, err
	}
	return batch.New(proc, p.settings.Performance.MaxConcurrent, p.log)
}

func (p *pipeline) list(ctx context.Context, path string) error {
	runner, err := p.runner()
	if err != nil {
		return err
	}
	return runList(ctx, runner, path)
}

func runList(ctx context.Context, runner *batch.Runner, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read url list: %w", err)
	}
	return runner.Run(ctx, batch.SplitURLs(string(content)))
}

func (p *pipeline) watch(ctx context.Context, dir string) error {
	runner, err := p.runner()
	if err != nil {
		return err
	}

	// One list at a time; the runner already fans out over its URLs.
	w, err := watcher.New(dir, func(ctx context.Context, path string) error {
		return runList(ctx, runner, path)
	}, p.log, 1)
	if err != nil {
		return err
	}
	defer w.Stop()

	p.log.Info(ctx, "Press Ctrl+C to stop")
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
