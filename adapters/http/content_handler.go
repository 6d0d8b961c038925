package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	domain "github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// collectionRoutes binds the store operations of one id-keyed collection of
// the active profile. replace is nil for collections that are only edited
// item by item.
type collectionRoutes[T domain.Identifiable] struct {
	name    string
	add     func(context.Context, T) (T, error)
	update  func(context.Context, int64, []byte) error
	remove  func(context.Context, int64) error
	replace func(context.Context, []T) error
}

func (r collectionRoutes[T]) register(rg *gin.RouterGroup) {
	rg.POST("", r.create)
	rg.PATCH("/:id", r.patch)
	rg.DELETE("/:id", r.delete)
	if r.replace != nil {
		rg.PUT("", r.replaceAll)
	}
}

func (r collectionRoutes[T]) create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for "+r.name, err))
		return
	}
	created, err := r.add(c.Request.Context(), item)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r collectionRoutes[T]) patch(c *gin.Context) {
	id, ok := parseItemID(c, "id")
	if !ok {
		return
	}
	body, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read request body", err))
		return
	}
	if err := r.update(c.Request.Context(), id, body); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r collectionRoutes[T]) delete(c *gin.Context) {
	id, ok := parseItemID(c, "id")
	if !ok {
		return
	}
	if err := r.remove(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r collectionRoutes[T]) replaceAll(c *gin.Context) {
	var items []T
	if err := c.ShouldBindJSON(&items); err != nil {
		c.Error(apperror.NewInvalidInput(r.name+" must be a JSON array", err))
		return
	}
	if err := r.replace(c.Request.Context(), items); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseItemID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.Error(apperror.NewInvalidInput(param+" must be an integer", err))
		return 0, false
	}
	return id, true
}

// ContentHandler exposes the list collections of the active profile.
type ContentHandler struct {
	store  *portfolioUC.Store
	logger logger.Logger
}

func NewContentHandler(store *portfolioUC.Store, log logger.Logger) *ContentHandler {
	return &ContentHandler{
		store:  store,
		logger: log,
	}
}

func (h *ContentHandler) Register(rg *gin.RouterGroup) {
	s := h.store

	collectionRoutes[domain.Project]{
		name: "project", add: s.AddProject, update: s.UpdateProject,
		remove: s.DeleteProject, replace: s.UpdateProjects,
	}.register(rg.Group("/projects"))

	collectionRoutes[domain.Experience]{
		name: "experience", add: s.AddExperience, update: s.UpdateExperienceItem,
		remove: s.DeleteExperience, replace: s.UpdateExperience,
	}.register(rg.Group("/experience"))

	collectionRoutes[domain.Education]{
		name: "education", add: s.AddEducation, update: s.UpdateEducationItem,
		remove: s.DeleteEducation, replace: s.UpdateEducation,
	}.register(rg.Group("/education"))

	collectionRoutes[domain.Testimonial]{
		name: "testimonial", add: s.AddTestimonial, update: s.UpdateTestimonialItem,
		remove: s.DeleteTestimonial, replace: s.UpdateTestimonials,
	}.register(rg.Group("/testimonials"))

	collectionRoutes[domain.BlogPost]{
		name: "blog post", add: s.AddBlogPost, update: s.UpdateBlogPost,
		remove: s.DeleteBlogPost, replace: s.UpdateBlogPosts,
	}.register(rg.Group("/blog-posts"))

	collectionRoutes[domain.Certification]{
		name: "certification", add: s.AddCertification, update: s.UpdateCertification,
		remove: s.DeleteCertification,
	}.register(rg.Group("/certifications"))

	collectionRoutes[domain.StatItem]{
		name: "stat", add: s.AddStat, update: s.UpdateStat,
		remove: s.DeleteStat,
	}.register(rg.Group("/stats"))
}
