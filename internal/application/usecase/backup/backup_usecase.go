package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-showcase/internal/application/service"
	"github.com/khoahotran/portfolio-showcase/internal/domain/interview"
	"github.com/khoahotran/portfolio-showcase/internal/domain/profile"
	"github.com/khoahotran/portfolio-showcase/internal/domain/settings"
	"github.com/khoahotran/portfolio-showcase/pkg/apperror"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

var tracer = otel.Tracer("backup_usecase")

const backupFolder = "backups/portfolio"

type Snapshot struct {
	Profile    *profile.Profile      `json:"profile"`
	Interviews []interview.Interview `json:"interviews"`
	Theme      settings.Theme        `json:"theme"`
	CreatedAt  string                `json:"createdAt"`
}

type BackupUseCase struct {
	profileRepo   profile.Repository
	interviewRepo interview.Repository
	settingsRepo  settings.Repository
	uploader      service.Uploader
	logger        logger.Logger
	now           func() time.Time
}

func NewBackupUseCase(
	p profile.Repository,
	i interview.Repository,
	s settings.Repository,
	uploader service.Uploader,
	log logger.Logger,
) *BackupUseCase {
	return &BackupUseCase{
		profileRepo:   p,
		interviewRepo: i,
		settingsRepo:  s,
		uploader:      uploader,
		logger:        log,
		now:           time.Now,
	}
}

type BackupOutput struct {
	URL      string
	PublicID string
}

func (uc *BackupUseCase) Execute(ctx context.Context) (*BackupOutput, error) {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	uc.logger.Info("Starting portfolio backup...")
	now := uc.now().UTC()

	p, state := uc.profileRepo.Load(ctx)
	if state == profile.LoadDegraded {
		err := apperror.NewPersistence("profile could not be read", nil)
		span.RecordError(err)
		uc.logger.Error("Skipping backup of partially read profile", err)
		return nil, err
	}
	theme, err := uc.settingsRepo.LoadTheme(ctx)
	if err != nil {
		uc.logger.Warn("Theme unreadable, backing up default", zap.Error(err))
	}

	snap := Snapshot{
		Profile:    p,
		Interviews: uc.interviewRepo.List(ctx),
		Theme:      theme,
		CreatedAt:  interview.Timestamp(now),
	}
	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("encode backup snapshot", err)
	}

	publicID := fmt.Sprintf("backup-%s.json", now.Format("2006-01-02_15-04-05"))
	url, err := uc.uploader.Upload(ctx, bytes.NewReader(body), backupFolder, publicID)
	if err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to upload backup", err)
		return nil, apperror.NewInternal("upload backup", err)
	}

	uc.logger.Info("Portfolio backup completed and uploaded successfully",
		zap.String("url", url),
		zap.String("public_id", publicID),
		zap.Int("interviews", len(snap.Interviews)),
	)
	return &BackupOutput{URL: url, PublicID: publicID}, nil
}
