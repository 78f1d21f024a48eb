package logger

import (
	"context"
	"io"
)

// Logger is the printf-style logger shared by every pipeline stage.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

// Options configures a Logger.
type Options struct {
	Level string
	// File, when set, receives a copy of every entry through a rolling writer.
	File   string
	Output io.Writer
}
