package media_storage

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio-showcase/internal/application/service"
	"github.com/khoahotran/portfolio-showcase/internal/config"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

// NewUploader picks the backend named by uploader.provider. "none" stores
// files in app.images_dir.
func NewUploader(ctx context.Context, cfg config.Config, log logger.Logger) (service.Uploader, error) {
	switch cfg.Uploader.Provider {
	case config.UploaderCloudinary:
		return NewCloudinaryAdapter(cfg, log)
	case config.UploaderS3:
		return NewS3Adapter(ctx, cfg, log)
	case config.UploaderNone, "":
		return NewLocalAdapter(cfg.App.ImagesDir)
	default:
		return nil, fmt.Errorf("unknown uploader provider %q", cfg.Uploader.Provider)
	}
}
