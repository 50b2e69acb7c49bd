package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/internal/application/service"
	"github.com/khoahotran/portfolio-showcase/internal/domain/profile"
	"github.com/khoahotran/portfolio-showcase/pkg/apperror"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

var tracer = otel.Tracer("media_usecase")

const profileImageFolder = "portfolio/profile"

type ProfileImageUseCase struct {
	profileRepo profile.Repository
	uploader    service.Uploader
	fetcher     service.ImageFetcher
	logger      logger.Logger
	// sourceDir bounds plain path and file:// sources. Empty rejects them.
	sourceDir string
	// localDir is set when the uploader writes into a local directory; older
	// profile images there are removed after a successful import.
	localDir string
	now      func() time.Time
}

func NewProfileImageUseCase(
	r profile.Repository,
	u service.Uploader,
	f service.ImageFetcher,
	sourceDir string,
	localDir string,
	log logger.Logger,
) *ProfileImageUseCase {
	return &ProfileImageUseCase{
		profileRepo: r,
		uploader:    u,
		fetcher:     f,
		sourceDir:   sourceDir,
		localDir:    localDir,
		logger:      log,
		now:         time.Now,
	}
}

type ImportProfileImageInput struct {
	// Source is an http(s) URL, a file:// URI or a plain local path. Paths
	// must resolve inside the source directory. Ignored when File is set.
	Source string
	File   io.Reader
}

type ImportProfileImageOutput struct {
	ImageURL string
	Profile  *profile.Profile
}

func (uc *ProfileImageUseCase) newPublicID() string {
	suffix := strconv.FormatUint(rand.Uint64(), 36)
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return fmt.Sprintf("profile_%d_%s.jpg", uc.now().UnixMilli(), suffix)
}

func (uc *ProfileImageUseCase) readSource(ctx context.Context, source string) ([]byte, error) {
	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		data, err := uc.fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, apperror.NewInvalidInput("could not download image", err)
		}
		return data, nil
	case strings.HasPrefix(source, "file://"):
		u, err := url.Parse(source)
		if err != nil {
			return nil, apperror.NewInvalidInput("malformed file uri", err)
		}
		source = u.Path
	case source == "" || strings.Contains(source, "://"):
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unsupported image source '%s'", source), nil)
	}

	return uc.readLocal(source)
}

// readLocal reads path through an os.Root opened on sourceDir, so neither
// ".." nor a symlink can reach outside it.
func (uc *ProfileImageUseCase) readLocal(path string) ([]byte, error) {
	if uc.sourceDir == "" {
		return nil, apperror.NewInvalidInput("local image paths are not accepted", nil)
	}
	base, err := filepath.Abs(uc.sourceDir)
	if err != nil {
		return nil, apperror.NewInternal("resolve image source directory", err)
	}

	rel := path
	if filepath.IsAbs(path) {
		if rel, err = filepath.Rel(base, path); err != nil {
			rel = path
		}
	}
	if !filepath.IsLocal(rel) {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("image path '%s' is outside %s", path, base), nil)
	}

	root, err := os.OpenRoot(base)
	if err != nil {
		return nil, apperror.NewInvalidInput("could not read image file", err)
	}
	defer root.Close()

	data, err := root.ReadFile(rel)
	if err != nil {
		return nil, apperror.NewInvalidInput("could not read image file", err)
	}
	return data, nil
}

func (uc *ProfileImageUseCase) Execute(ctx context.Context, input ImportProfileImageInput) (*ImportProfileImageOutput, error) {
	ctx, span := tracer.Start(ctx, "ImportProfileImage")
	defer span.End()

	var file io.Reader = input.File
	if file == nil {
		data, err := uc.readSource(ctx, input.Source)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		file = bytes.NewReader(data)
	}

	publicID := uc.newPublicID()
	span.SetAttributes(attribute.String("public_id", publicID))

	p, state := uc.profileRepo.Load(ctx)
	if state == profile.LoadDegraded {
		err := apperror.NewPersistence("profile could not be read", nil)
		span.RecordError(err)
		return nil, err
	}

	imageURL, err := uc.uploader.Upload(ctx, file, profileImageFolder, publicID)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to store profile image", err)
	}

	p.ProfileImage = imageURL
	if err := uc.profileRepo.Save(ctx, p); err != nil {
		span.RecordError(err)
		go uc.uploader.Delete(context.Background(), publicID)
		return nil, err
	}

	if uc.localDir != "" {
		uc.cleanupOldImages(publicID)
	}

	uc.logger.Info("Profile image imported", zap.String("url", imageURL))
	return &ImportProfileImageOutput{ImageURL: imageURL, Profile: p}, nil
}

// cleanupOldImages deletes every profile_*.jpg in localDir except current.
// Failures are logged only.
func (uc *ProfileImageUseCase) cleanupOldImages(current string) {
	matches, err := filepath.Glob(filepath.Join(uc.localDir, "profile_*.jpg"))
	if err != nil {
		uc.logger.Error("Failed to list old profile images", err)
		return
	}
	for _, m := range matches {
		name := filepath.Base(m)
		if name == current {
			continue
		}
		if err := uc.uploader.Delete(context.Background(), name); err != nil {
			uc.logger.Warn("Failed to remove old profile image", zap.String("file", name), zap.Error(err))
		}
	}
}
