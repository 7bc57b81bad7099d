package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enotalexnot/ztk-catalog/internal/models"
)

// --- Categories ---

type categoryCreate struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type categoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

func (s *Server) listCategories(c *gin.Context) {
	cats, err := s.store.ListCategories()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (s *Server) getCategory(c *gin.Context) {
	id, ok := idParam(c, "categoryId")
	if !ok {
		return
	}
	cat, err := s.store.GetCategory(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (s *Server) createCategory(c *gin.Context) {
	var req categoryCreate
	if !bindJSON(c, &req) {
		return
	}
	cat := models.Category{Name: req.Name, Description: req.Description, Icon: req.Icon}
	if err := s.store.CreateCategory(&cat); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (s *Server) updateCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req categoryUpdate
	if !bindJSON(c, &req) {
		return
	}
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Icon != nil {
		fields["icon"] = *req.Icon
	}
	if err := s.store.UpdateCategory(id, fields); err != nil {
		fail(c, err)
		return
	}
	cat, err := s.store.GetCategory(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (s *Server) deleteCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteCategory(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Subcategories ---

type subcategoryCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
}

type subcategoryUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CategoryID  *uint   `json:"categoryId"`
}

func (s *Server) listSubcategories(c *gin.Context) {
	subs, err := s.store.ListSubcategories()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (s *Server) listSubcategoriesByCategory(c *gin.Context) {
	id, ok := idParam(c, "categoryId")
	if !ok {
		return
	}
	subs, err := s.store.ListSubcategoriesByCategory(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (s *Server) createSubcategory(c *gin.Context) {
	var req subcategoryCreate
	if !bindJSON(c, &req) {
		return
	}
	sub := models.Subcategory{Name: req.Name, Description: req.Description, CategoryID: req.CategoryID}
	if err := s.store.CreateSubcategory(&sub); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (s *Server) updateSubcategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req subcategoryUpdate
	if !bindJSON(c, &req) {
		return
	}
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if err := s.store.UpdateSubcategory(id, fields); err != nil {
		fail(c, err)
		return
	}
	sub, err := s.store.GetSubcategory(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (s *Server) deleteSubcategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteSubcategory(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Products ---

type productCreate struct {
	Name                string            `json:"name" binding:"required"`
	Description         string            `json:"description"`
	CategoryID          uint              `json:"categoryId" binding:"required"`
	SubcategoryID       *uint             `json:"subcategoryId"`
	Price               string            `json:"price"`
	ImageURL            string            `json:"imageUrl"`
	Featured            bool              `json:"featured"`
	Specifications      map[string]string `json:"specifications"`
	Model               string            `json:"model"`
	Brand               string            `json:"brand"`
	Images              []string          `json:"images"`
	Files               []string          `json:"files"`
	DetailedDescription string            `json:"detailedDescription"`
	Warranty            string            `json:"warranty"`
}

type productUpdate struct {
	Name                *string           `json:"name"`
	Description         *string           `json:"description"`
	CategoryID          *uint             `json:"categoryId"`
	SubcategoryID       *uint             `json:"subcategoryId"`
	Price               *string           `json:"price"`
	ImageURL            *string           `json:"imageUrl"`
	Featured            *bool             `json:"featured"`
	Specifications      map[string]string `json:"specifications"`
	Model               *string           `json:"model"`
	Brand               *string           `json:"brand"`
	Images              []string          `json:"images"`
	Files               []string          `json:"files"`
	DetailedDescription *string           `json:"detailedDescription"`
	Warranty            *string           `json:"warranty"`
}

func (s *Server) listProducts(c *gin.Context) {
	var (
		products []models.Product
		err      error
	)
	if c.Query("featured") == "true" {
		products, err = s.store.ListFeaturedProducts()
	} else {
		products, err = s.store.ListProducts()
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) getProduct(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p, err := s.store.GetProduct(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) listProductsByCategory(c *gin.Context) {
	id, ok := idParam(c, "categoryId")
	if !ok {
		return
	}
	products, err := s.store.ListProductsByCategory(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) listProductsBySubcategory(c *gin.Context) {
	id, ok := idParam(c, "subcategoryId")
	if !ok {
		return
	}
	products, err := s.store.ListProductsBySubcategory(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) createProduct(c *gin.Context) {
	var req productCreate
	if !bindJSON(c, &req) {
		return
	}
	p := models.Product{
		Name:                req.Name,
		Description:         req.Description,
		CategoryID:          req.CategoryID,
		SubcategoryID:       req.SubcategoryID,
		Price:               req.Price,
		ImageURL:            req.ImageURL,
		Featured:            req.Featured,
		Specifications:      req.Specifications,
		Model:               req.Model,
		Brand:               req.Brand,
		Images:              req.Images,
		Files:               req.Files,
		DetailedDescription: req.DetailedDescription,
		Warranty:            req.Warranty,
	}
	if err := s.store.CreateProduct(&p); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req productUpdate
	if !bindJSON(c, &req) {
		return
	}
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if req.SubcategoryID != nil {
		fields["subcategory_id"] = *req.SubcategoryID
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}
	if req.Specifications != nil {
		fields["specifications"] = jsonText(req.Specifications)
	}
	if req.Model != nil {
		fields["model"] = *req.Model
	}
	if req.Brand != nil {
		fields["brand"] = *req.Brand
	}
	if req.Images != nil {
		fields["images"] = jsonText(req.Images)
	}
	if req.Files != nil {
		fields["files"] = jsonText(req.Files)
	}
	if req.DetailedDescription != nil {
		fields["detailed_description"] = *req.DetailedDescription
	}
	if req.Warranty != nil {
		fields["warranty"] = *req.Warranty
	}
	if err := s.store.UpdateProduct(id, fields); err != nil {
		fail(c, err)
		return
	}
	p, err := s.store.GetProduct(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteProduct(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
