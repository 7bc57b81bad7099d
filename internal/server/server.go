// Package server wires the HTTP surface: public catalog reads, the inquiry
// form, uploads, and session-gated admin CRUD for every managed entity.
package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/enotalexnot/ztk-catalog/internal/auth"
	"github.com/enotalexnot/ztk-catalog/internal/config"
	"github.com/enotalexnot/ztk-catalog/internal/store"
	"github.com/enotalexnot/ztk-catalog/internal/upload"
)

type Server struct {
	store   *store.Store
	auth    *auth.Service
	uploads *upload.Handler
	cfg     config.Config
}

func New(st *store.Store, au *auth.Service, up *upload.Handler, cfg config.Config) *Server {
	return &Server{store: st, auth: au, uploads: up, cfg: cfg}
}

func (s *Server) SetupRouter() *gin.Engine {
	if s.cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	registerTagNames()
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Catalog
		api.GET("/products", s.listProducts)
		api.GET("/products/:id", s.getProduct)
		api.GET("/products/category/:categoryId", s.listProductsByCategory)
		api.GET("/products/subcategory/:subcategoryId", s.listProductsBySubcategory)
		api.GET("/categories", s.listCategories)
		api.GET("/categories/:categoryId", s.getCategory)
		api.GET("/subcategories", s.listSubcategories)
		api.GET("/subcategories/category/:categoryId", s.listSubcategoriesByCategory)

		// Content
		api.GET("/news", s.listNews)
		api.GET("/news/:id", s.getNews)
		api.GET("/articles", s.listArticles)
		api.GET("/articles/:id", s.getArticle)
		api.GET("/partners", s.listPartners)
		api.GET("/static-pages", s.listStaticPages)
		api.GET("/static-pages/:slug", s.getStaticPage)
		api.GET("/homepage-content", s.listHomepageContent)
		api.GET("/homepage-content/:key", s.getHomepageContent)
		api.GET("/site-settings", s.listSiteSettings)
		api.GET("/site-settings/:key", s.getSiteSetting)
		api.GET("/menu-items", s.getMenuTree)
		api.GET("/slider-items", s.listActiveSliderItems)

		// The contact form is the only public write.
		api.POST("/inquiries", s.inquiryLimiter(), s.createInquiry)

		api.POST("/upload", s.handleUpload)

		admin := api.Group("/admin")
		{
			admin.POST("/login", s.login)
			admin.POST("/logout", s.logout)
			admin.POST("/create", s.createAdmin)

			gated := admin.Group("", s.requireAdmin())
			{
				gated.GET("/me", s.me)
				gated.GET("/inquiries", s.listInquiries)

				gated.POST("/products", s.createProduct)
				gated.PUT("/products/:id", s.updateProduct)
				gated.DELETE("/products/:id", s.deleteProduct)

				gated.POST("/categories", s.createCategory)
				gated.PUT("/categories/:id", s.updateCategory)
				gated.DELETE("/categories/:id", s.deleteCategory)

				gated.POST("/subcategories", s.createSubcategory)
				gated.PUT("/subcategories/:id", s.updateSubcategory)
				gated.DELETE("/subcategories/:id", s.deleteSubcategory)

				gated.POST("/news", s.createNews)
				gated.PUT("/news/:id", s.updateNews)
				gated.DELETE("/news/:id", s.deleteNews)

				gated.POST("/articles", s.createArticle)
				gated.PUT("/articles/:id", s.updateArticle)
				gated.DELETE("/articles/:id", s.deleteArticle)

				gated.POST("/partners", s.createPartner)
				gated.PUT("/partners/:id", s.updatePartner)
				gated.DELETE("/partners/:id", s.deletePartner)

				gated.POST("/static-pages", s.createStaticPage)
				gated.PUT("/static-pages/:slug", s.updateStaticPage)
				gated.DELETE("/static-pages/:slug", s.deleteStaticPage)

				gated.POST("/homepage-content", s.createHomepageContent)
				gated.PUT("/homepage-content/:key", s.updateHomepageContent)

				gated.GET("/site-settings", s.listSiteSettings)
				gated.PUT("/site-settings/:key", s.updateSiteSetting)

				gated.GET("/menu-items", s.listMenuItems)
				gated.POST("/menu-items", s.createMenuItem)
				gated.PUT("/menu-items/:id", s.updateMenuItem)
				gated.DELETE("/menu-items/:id", s.deleteMenuItem)

				gated.GET("/slider-items", s.listSliderItems)
				gated.POST("/slider-items", s.createSliderItem)
				gated.PUT("/slider-items/:id", s.updateSliderItem)
				gated.DELETE("/slider-items/:id", s.deleteSliderItem)
			}
		}
	}

	// Uploaded files are served straight back from disk.
	r.Static("/uploads", s.cfg.UploadDir)

	// SPA fallback: anything that is not API or an upload goes to the
	// client application's entry point.
	r.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/uploads/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File("./web/index.html")
	})

	return r
}

// idParam parses a numeric path parameter; a non-numeric id behaves like a
// missing row.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}
