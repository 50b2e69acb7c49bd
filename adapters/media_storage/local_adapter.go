package media_storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/khoahotran/portfolio-showcase/internal/application/service"
)

// localAdapter keeps files on disk under a base directory. Returned URLs are
// absolute file paths.
type localAdapter struct {
	baseDir string
}

func NewLocalAdapter(baseDir string) (service.Uploader, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve images dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}
	return &localAdapter{baseDir: abs}, nil
}

func (a *localAdapter) path(publicID string) string {
	return filepath.Join(a.baseDir, filepath.Base(publicID))
}

func (a *localAdapter) Upload(ctx context.Context, file io.Reader, _ string, publicID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dst := a.path(publicID)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, file); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("write image file: %w", err)
	}
	return dst, nil
}

func (a *localAdapter) Delete(_ context.Context, publicID string) error {
	if err := os.Remove(a.path(publicID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}
