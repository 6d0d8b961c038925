package media

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/google/uuid"
	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
	"go.uber.org/zap"
)

const mediaRoot = "portfolio/media"

// Kinds are the folders an admin may upload into.
var Kinds = []string{"avatar", "project", "blog", "testimonial", "custom"}

// UploadMediaUseCase stores an image referenced by portfolio content
// (avatar, project image, custom section image) and returns its URL. The
// caller writes the URL into the relevant record.
type UploadMediaUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadMediaUseCase(u service.Uploader, log logger.Logger) *UploadMediaUseCase {
	return &UploadMediaUseCase{uploader: u, logger: log}
}

type UploadMediaInput struct {
	ProfileID string
	Kind      string
	File      io.Reader
}

type UploadMediaOutput struct {
	URL      string
	PublicID string
}

func (uc *UploadMediaUseCase) Execute(ctx context.Context, input UploadMediaInput) (*UploadMediaOutput, error) {
	if !slices.Contains(Kinds, input.Kind) {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown media kind %q", input.Kind), nil)
	}
	if input.File == nil {
		return nil, apperror.NewInvalidInput("file is required", nil)
	}

	folder := fmt.Sprintf("%s/%s/%s", mediaRoot, input.ProfileID, input.Kind)
	publicID := uuid.NewString()

	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload media file", err)
	}

	uc.logger.Info("Media uploaded",
		zap.String("profile_id", input.ProfileID),
		zap.String("kind", input.Kind),
		zap.String("url", url),
	)
	return &UploadMediaOutput{URL: url, PublicID: folder + "/" + publicID}, nil
}
