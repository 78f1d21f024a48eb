package writer

import "context"

// Writer persists one labeled summary and returns the paths it wrote.
type Writer interface {
	Write(ctx context.Context, fileName, title, body string) ([]string, error)
}
