package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type SkillHandler struct {
	store  *portfolioUC.Store
	logger logger.Logger
}

func NewSkillHandler(store *portfolioUC.Store, log logger.Logger) *SkillHandler {
	return &SkillHandler{
		store:  store,
		logger: log,
	}
}

func (h *SkillHandler) respond(c *gin.Context, err error) {
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.store.ActiveProfile().Skills)
}

func (h *SkillHandler) ReplaceSkills(c *gin.Context) {
	var req []domain.Skill
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("skills must be a JSON array", err))
		return
	}
	h.respond(c, h.store.UpdateSkills(c.Request.Context(), req))
}

func (h *SkillHandler) AddCategory(c *gin.Context) {
	var req SkillCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("category is required", err))
		return
	}
	h.respond(c, h.store.AddSkillCategory(c.Request.Context(), req.Category))
}

func (h *SkillHandler) DeleteCategory(c *gin.Context) {
	h.respond(c, h.store.DeleteSkillCategory(c.Request.Context(), c.Param("category")))
}

func (h *SkillHandler) AddItem(c *gin.Context) {
	var req SkillItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill item", err))
		return
	}
	h.respond(c, h.store.AddSkillItem(c.Request.Context(), c.Param("category"), req.Name, req.Level))
}

func (h *SkillHandler) UpdateItem(c *gin.Context) {
	var req SkillLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill level", err))
		return
	}
	h.respond(c, h.store.UpdateSkillItem(c.Request.Context(), c.Param("category"), c.Param("name"), req.Level))
}

func (h *SkillHandler) DeleteItem(c *gin.Context) {
	h.respond(c, h.store.DeleteSkillItem(c.Request.Context(), c.Param("category"), c.Param("name")))
}
