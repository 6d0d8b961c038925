package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// ProfileHandler manages the domain profiles and the settings of the active one.
type ProfileHandler struct {
	store  *portfolioUC.Store
	logger logger.Logger
}

func NewProfileHandler(store *portfolioUC.Store, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		store:  store,
		logger: log,
	}
}

func (h *ProfileHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.State())
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"profiles":        h.store.ListProfiles(),
		"activeProfileId": h.store.ActiveProfileID(),
	})
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req ProfileNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("domainName is required", err))
		return
	}

	created, err := h.store.AddNewProfile(c.Request.Context(), req.DomainName)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProfileHandler) DuplicateProfile(c *gin.Context) {
	sourceID := c.Param("id")
	var req ProfileNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("domainName is required", err))
		return
	}

	created, err := h.store.DuplicateProfile(c.Request.Context(), sourceID, req.DomainName)
	if err != nil {
		c.Error(err)
		return
	}
	if created.ID == "" {
		c.Error(apperror.NewNotFound("profile", sourceID))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProfileHandler) RenameProfile(c *gin.Context) {
	var req ProfileNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("domainName is required", err))
		return
	}
	if err := h.store.UpdateProfileDomainName(c.Request.Context(), c.Param("id"), req.DomainName); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteProfile answers with the remaining profiles so the caller can see
// whether the last profile was kept.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.store.DeleteProfile(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	h.ListProfiles(c)
}

func (h *ProfileHandler) ActivateProfile(c *gin.Context) {
	if err := h.store.SetActiveProfile(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req domain.ProfileData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}
	if err := h.store.UpdateProfile(c.Request.Context(), req); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.store.ActiveProfile().Profile)
}

func (h *ProfileHandler) UpdateSEO(c *gin.Context) {
	var req domain.SEOSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for SEO update", err))
		return
	}
	if err := h.store.UpdateSEO(c.Request.Context(), req); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.store.ActiveProfile().SEO)
}

func (h *ProfileHandler) UpdateCustomLinks(c *gin.Context) {
	var req []domain.CustomLink
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("custom links must be a JSON array", err))
		return
	}
	if err := h.store.UpdateCustomLinks(c.Request.Context(), req); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.store.ActiveProfile().CustomLinks)
}

func (h *ProfileHandler) PatchTheme(c *gin.Context) {
	patch, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read request body", err))
		return
	}
	if err := h.store.UpdateTheme(c.Request.Context(), patch); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.store.ActiveProfile().Theme)
}
