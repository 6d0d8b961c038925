package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// SectionHandler edits section visibility and ordering, and the custom
// sections of the active profile.
type SectionHandler struct {
	store  *portfolioUC.Store
	logger logger.Logger
}

func NewSectionHandler(store *portfolioUC.Store, log logger.Logger) *SectionHandler {
	return &SectionHandler{
		store:  store,
		logger: log,
	}
}

type sectionLayout struct {
	Visibility domain.SectionVisibility `json:"sectionVisibility"`
	Order      []string                 `json:"sectionOrder"`
}

func (h *SectionHandler) respond(c *gin.Context, err error) {
	if err != nil {
		c.Error(err)
		return
	}
	p := h.store.ActiveProfile()
	c.JSON(http.StatusOK, sectionLayout{Visibility: p.SectionVisibility, Order: p.SectionOrder})
}

func (h *SectionHandler) Toggle(c *gin.Context) {
	kind, ok := domain.ParseSectionKind(c.Param("id"))
	if !ok {
		c.Error(apperror.NewInvalidInput("unknown section "+c.Param("id"), nil))
		return
	}
	h.respond(c, h.store.ToggleSection(c.Request.Context(), kind))
}

func (h *SectionHandler) UpdateVisibility(c *gin.Context) {
	var req domain.SectionVisibility
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid section visibility", err))
		return
	}
	h.respond(c, h.store.UpdateSectionVisibility(c.Request.Context(), req))
}

func (h *SectionHandler) UpdateOrder(c *gin.Context) {
	var req SectionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("order is required", err))
		return
	}
	h.respond(c, h.store.UpdateSectionOrder(c.Request.Context(), req.Order))
}

func (h *SectionHandler) MoveUp(c *gin.Context) {
	h.respond(c, h.store.MoveSectionUp(c.Request.Context(), c.Param("id")))
}

func (h *SectionHandler) MoveDown(c *gin.Context) {
	h.respond(c, h.store.MoveSectionDown(c.Request.Context(), c.Param("id")))
}

// Custom sections

func (h *SectionHandler) CreateCustomSection(c *gin.Context) {
	var req domain.CustomSection
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid custom section", err))
		return
	}
	created, err := h.store.AddCustomSection(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SectionHandler) PatchCustomSection(c *gin.Context) {
	patch, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read request body", err))
		return
	}
	if err := h.store.UpdateCustomSection(c.Request.Context(), c.Param("id"), patch); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SectionHandler) DeleteCustomSection(c *gin.Context) {
	h.respond(c, h.store.DeleteCustomSection(c.Request.Context(), c.Param("id")))
}

func (h *SectionHandler) CreateCustomSectionItem(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read request body", err))
		return
	}
	body, err := domain.DecodeItemBody(raw)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid custom section item", err))
		return
	}
	created, err := h.store.AddCustomSectionItem(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SectionHandler) PatchCustomSectionItem(c *gin.Context) {
	itemID, ok := parseItemID(c, "itemId")
	if !ok {
		return
	}
	patch, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read request body", err))
		return
	}
	if err := h.store.UpdateCustomSectionItem(c.Request.Context(), c.Param("id"), itemID, patch); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SectionHandler) DeleteCustomSectionItem(c *gin.Context) {
	itemID, ok := parseItemID(c, "itemId")
	if !ok {
		return
	}
	if err := h.store.DeleteCustomSectionItem(c.Request.Context(), c.Param("id"), itemID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
