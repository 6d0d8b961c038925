package backup

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/khoahotran/portfolio/internal/application/service"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
	"go.uber.org/zap"
)

const backupFolder = "backups/portfolio"

// BackupUseCase copies the persisted portfolio document to the asset store.
type BackupUseCase struct {
	storage  domain.Storage
	uploader service.Uploader
	logger   logger.Logger
	now      func() time.Time
}

func NewBackupUseCase(storage domain.Storage, uploader service.Uploader, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		storage:  storage,
		uploader: uploader,
		logger:   log,
		now:      time.Now,
	}
}

type BackupOutput struct {
	URL      string
	PublicID string
}

func (uc *BackupUseCase) Execute(ctx context.Context) (*BackupOutput, error) {
	uc.logger.Info("Starting portfolio backup...")

	snapshot, err := uc.storage.Get(ctx, domain.SlotAllProfiles)
	if err != nil {
		uc.logger.Error("Failed to read portfolio snapshot", err, zap.String("slot", domain.SlotAllProfiles))
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	timestamp := uc.now().UTC().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("portfolio-%s.json", timestamp)
	publicID := fmt.Sprintf("%s/%s", backupFolder, filename)

	uploadURL, err := uc.uploader.UploadRaw(ctx, bytes.NewReader([]byte(snapshot)), backupFolder, filename)
	if err != nil {
		uc.logger.Error("Failed to upload backup to Cloudinary", err)
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	uc.logger.Info("Portfolio backup completed and uploaded successfully",
		zap.String("url", uploadURL),
		zap.String("public_id", publicID),
		zap.Int("bytes", len(snapshot)),
	)
	return &BackupOutput{URL: uploadURL, PublicID: publicID}, nil
}
