package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// TransferHandler moves the whole document in and out of the store.
type TransferHandler struct {
	store  *portfolioUC.Store
	logger logger.Logger
}

func NewTransferHandler(store *portfolioUC.Store, log logger.Logger) *TransferHandler {
	return &TransferHandler{
		store:  store,
		logger: log,
	}
}

func (h *TransferHandler) Export(c *gin.Context) {
	doc, err := h.store.Export(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	filename := fmt.Sprintf("portfolio-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

func (h *TransferHandler) Import(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read request body", err))
		return
	}
	if err := h.store.ImportDocument(c.Request.Context(), raw); err != nil {
		c.Error(err)
		return
	}
	email, _ := GetAdminEmailFromGinContext(c)
	h.logger.Info("Portfolio imported", zap.String("admin", email), zap.Int("bytes", len(raw)))
	h.respondProfiles(c)
}

func (h *TransferHandler) Reset(c *gin.Context) {
	if err := h.store.ResetToDefault(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	email, _ := GetAdminEmailFromGinContext(c)
	h.logger.Warn("Portfolio reset to defaults", zap.String("admin", email))
	h.respondProfiles(c)
}

func (h *TransferHandler) respondProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"profiles":        h.store.ListProfiles(),
		"activeProfileId": h.store.ActiveProfileID(),
	})
}
