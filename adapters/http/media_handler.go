package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/khoahotran/portfolio/internal/application/usecase/media"
	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type MediaHandler struct {
	uploadMediaUC *mediaUC.UploadMediaUseCase
	store         *portfolioUC.Store
	logger        logger.Logger
}

func NewMediaHandler(uploadUC *mediaUC.UploadMediaUseCase, store *portfolioUC.Store, log logger.Logger) *MediaHandler {
	return &MediaHandler{
		uploadMediaUC: uploadUC,
		store:         store,
		logger:        log,
	}
}

// UploadMedia accepts a multipart "file" plus a "kind" field. The file is
// filed under the active profile unless "profile_id" names another one.
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	profileID := c.PostForm("profile_id")
	if profileID == "" {
		profileID = h.store.ActiveProfileID()
	}

	input := mediaUC.UploadMediaInput{
		ProfileID: profileID,
		Kind:      c.DefaultPostForm("kind", "custom"),
		File:      file,
	}

	output, err := h.uploadMediaUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, MediaDTO{URL: output.URL, PublicID: output.PublicID})
}
