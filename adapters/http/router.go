package http

import (
	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio/pkg/metrics"
)

type Handlers struct {
	Auth     *AuthHandler
	Public   *PublicHandler
	Profile  *ProfileHandler
	Content  *ContentHandler
	Skill    *SkillHandler
	Section  *SectionHandler
	Transfer *TransferHandler
	// Media is nil when no uploader is configured.
	Media    *MediaHandler
}

type RouterOptions struct {
	AuthMiddleware  gin.HandlerFunc
	ErrorMiddleware gin.HandlerFunc
	Metrics         bool
}

func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if opts.Metrics {
		router.Use(metrics.GinMiddleware())
		router.GET("/metrics", metrics.Handler())
	}
	router.Use(opts.ErrorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", h.Public.Health)

		public := api.Group("/portfolio")
		{
			public.GET("", h.Public.GetPortfolio)
			public.GET("/page", h.Public.GetPage)
			public.GET("/theme", h.Public.GetTheme)
			public.GET("/rss", h.Public.GenerateRSS)
		}

		admin := api.Group("/admin")
		{
			adminAuth := admin.Group("/auth")
			adminAuth.POST("/login", h.Auth.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(opts.AuthMiddleware)
			{
				adminPrivate.GET("/state", h.Profile.GetState)

				profiles := adminPrivate.Group("/profiles")
				{
					profiles.GET("", h.Profile.ListProfiles)
					profiles.POST("", h.Profile.CreateProfile)
					profiles.POST("/:id/duplicate", h.Profile.DuplicateProfile)
					profiles.PATCH("/:id", h.Profile.RenameProfile)
					profiles.DELETE("/:id", h.Profile.DeleteProfile)
					profiles.POST("/:id/activate", h.Profile.ActivateProfile)
				}

				adminPrivate.PUT("/profile", h.Profile.UpdateProfile)
				adminPrivate.PUT("/seo", h.Profile.UpdateSEO)
				adminPrivate.PATCH("/theme", h.Profile.PatchTheme)
				adminPrivate.PUT("/custom-links", h.Profile.UpdateCustomLinks)

				h.Content.Register(adminPrivate)

				skills := adminPrivate.Group("/skills")
				{
					skills.PUT("", h.Skill.ReplaceSkills)
					skills.POST("/categories", h.Skill.AddCategory)
					skills.DELETE("/categories/:category", h.Skill.DeleteCategory)
					skills.POST("/categories/:category/items", h.Skill.AddItem)
					skills.PUT("/categories/:category/items/:name", h.Skill.UpdateItem)
					skills.DELETE("/categories/:category/items/:name", h.Skill.DeleteItem)
				}

				sections := adminPrivate.Group("/sections")
				{
					sections.POST("/:id/toggle", h.Section.Toggle)
					sections.PUT("/visibility", h.Section.UpdateVisibility)
					sections.PUT("/order", h.Section.UpdateOrder)
					sections.POST("/:id/move-up", h.Section.MoveUp)
					sections.POST("/:id/move-down", h.Section.MoveDown)
				}

				custom := adminPrivate.Group("/custom-sections")
				{
					custom.POST("", h.Section.CreateCustomSection)
					custom.PATCH("/:id", h.Section.PatchCustomSection)
					custom.DELETE("/:id", h.Section.DeleteCustomSection)
					custom.POST("/:id/items", h.Section.CreateCustomSectionItem)
					custom.PATCH("/:id/items/:itemId", h.Section.PatchCustomSectionItem)
					custom.DELETE("/:id/items/:itemId", h.Section.DeleteCustomSectionItem)
				}

				adminPrivate.GET("/export", h.Transfer.Export)
				adminPrivate.POST("/import", h.Transfer.Import)
				adminPrivate.POST("/reset", h.Transfer.Reset)

				if h.Media != nil {
					adminPrivate.POST("/media", h.Media.UploadMedia)
				}
			}
		}
	}

	return router
}
