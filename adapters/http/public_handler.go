package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	feedUC "github.com/khoahotran/portfolio/internal/application/usecase/feed"
	"github.com/khoahotran/portfolio/internal/application/usecase/page"
	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// PublicHandler serves the read-only projection of the active profile.
type PublicHandler struct {
	store      *portfolioUC.Store
	registry   page.Registry
	rssUseCase *feedUC.RSSUseCase
	logger     logger.Logger
}

func NewPublicHandler(store *portfolioUC.Store, registry page.Registry, rssUC *feedUC.RSSUseCase, log logger.Logger) *PublicHandler {
	return &PublicHandler{
		store:      store,
		registry:   registry,
		rssUseCase: rssUC,
		logger:     log,
	}
}

func (h *PublicHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

func (h *PublicHandler) GetPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ActiveView())
}

func (h *PublicHandler) GetPage(c *gin.Context) {
	view := h.store.ActiveView()
	c.JSON(http.StatusOK, PageDTO{
		Profile:  view.Profile,
		SEO:      view.SEO,
		Links:    view.CustomLinks,
		Sections: page.Compose(view, h.registry),
	})
}

func (h *PublicHandler) GetTheme(c *gin.Context) {
	view := h.store.ActiveView()
	c.JSON(http.StatusOK, view.Theme.Resolve())
}

func (h *PublicHandler) GenerateRSS(c *gin.Context) {

	feed, err := h.rssUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate RSS feed", err))
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")

	if err := feed.WriteRss(c.Writer); err != nil {

		h.logger.Error("Failed to write RSS feed to response", err)
	}
}
