package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/enotalexnot/ztk-catalog/internal/models"
	"github.com/enotalexnot/ztk-catalog/internal/store"
)

// News and articles share a shape but stay separate entities; the site
// renders them in different sections.

type postCreate struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Excerpt  string `json:"excerpt"`
	ImageURL string `json:"imageUrl"`
}

type postUpdate struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Excerpt  *string `json:"excerpt"`
	ImageURL *string `json:"imageUrl"`
}

func (u *postUpdate) fields() map[string]any {
	fields := map[string]any{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Content != nil {
		fields["content"] = *u.Content
	}
	if u.Excerpt != nil {
		fields["excerpt"] = *u.Excerpt
	}
	if u.ImageURL != nil {
		fields["image_url"] = *u.ImageURL
	}
	return fields
}

// --- News ---

func (s *Server) listNews(c *gin.Context) {
	news, err := s.store.ListNews()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, news)
}

func (s *Server) getNews(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	n, err := s.store.GetNews(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *Server) createNews(c *gin.Context) {
	var req postCreate
	if !bindJSON(c, &req) {
		return
	}
	n := models.News{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		ImageURL:    req.ImageURL,
		PublishedAt: time.Now(),
	}
	if err := s.store.CreateNews(&n); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (s *Server) updateNews(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req postUpdate
	if !bindJSON(c, &req) {
		return
	}
	if err := s.store.UpdateNews(id, req.fields()); err != nil {
		fail(c, err)
		return
	}
	n, err := s.store.GetNews(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (s *Server) deleteNews(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteNews(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Articles ---

func (s *Server) listArticles(c *gin.Context) {
	articles, err := s.store.ListArticles()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (s *Server) getArticle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	a, err := s.store.GetArticle(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) createArticle(c *gin.Context) {
	var req postCreate
	if !bindJSON(c, &req) {
		return
	}
	a := models.Article{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		ImageURL:    req.ImageURL,
		PublishedAt: time.Now(),
	}
	if err := s.store.CreateArticle(&a); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (s *Server) updateArticle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req postUpdate
	if !bindJSON(c, &req) {
		return
	}
	if err := s.store.UpdateArticle(id, req.fields()); err != nil {
		fail(c, err)
		return
	}
	a, err := s.store.GetArticle(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) deleteArticle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteArticle(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Partners ---

type partnerCreate struct {
	Name        string `json:"name" binding:"required"`
	ImageURL    string `json:"imageUrl"`
	WebsiteURL  string `json:"websiteUrl"`
	Description string `json:"description"`
}

type partnerUpdate struct {
	Name        *string `json:"name"`
	ImageURL    *string `json:"imageUrl"`
	WebsiteURL  *string `json:"websiteUrl"`
	Description *string `json:"description"`
}

func (s *Server) listPartners(c *gin.Context) {
	partners, err := s.store.ListPartners()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, partners)
}

func (s *Server) createPartner(c *gin.Context) {
	var req partnerCreate
	if !bindJSON(c, &req) {
		return
	}
	p := models.Partner{Name: req.Name, ImageURL: req.ImageURL, WebsiteURL: req.WebsiteURL, Description: req.Description}
	if err := s.store.CreatePartner(&p); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) updatePartner(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req partnerUpdate
	if !bindJSON(c, &req) {
		return
	}
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.WebsiteURL != nil {
		fields["website_url"] = *req.WebsiteURL
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if err := s.store.UpdatePartner(id, fields); err != nil {
		fail(c, err)
		return
	}
	p, err := s.store.GetPartner(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) deletePartner(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeletePartner(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Static pages ---

type staticPageCreate struct {
	Slug      string `json:"slug" binding:"required"`
	TitleRu   string `json:"titleRu" binding:"required"`
	TitleEn   string `json:"titleEn"`
	ContentRu string `json:"contentRu"`
	ContentEn string `json:"contentEn"`
}

type staticPageUpdate struct {
	TitleRu   *string `json:"titleRu"`
	TitleEn   *string `json:"titleEn"`
	ContentRu *string `json:"contentRu"`
	ContentEn *string `json:"contentEn"`
}

func (s *Server) listStaticPages(c *gin.Context) {
	pages, err := s.store.ListStaticPages()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

func (s *Server) getStaticPage(c *gin.Context) {
	page, err := s.store.GetStaticPageBySlug(c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) createStaticPage(c *gin.Context) {
	var req staticPageCreate
	if !bindJSON(c, &req) {
		return
	}
	page := models.StaticPage{
		Slug:      req.Slug,
		TitleRu:   req.TitleRu,
		TitleEn:   req.TitleEn,
		ContentRu: req.ContentRu,
		ContentEn: req.ContentEn,
	}
	if err := s.store.CreateStaticPage(&page); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, page)
}

func (s *Server) updateStaticPage(c *gin.Context) {
	slug := c.Param("slug")
	var req staticPageUpdate
	if !bindJSON(c, &req) {
		return
	}
	fields := map[string]any{}
	if req.TitleRu != nil {
		fields["title_ru"] = *req.TitleRu
	}
	if req.TitleEn != nil {
		fields["title_en"] = *req.TitleEn
	}
	if req.ContentRu != nil {
		fields["content_ru"] = *req.ContentRu
	}
	if req.ContentEn != nil {
		fields["content_en"] = *req.ContentEn
	}
	if err := s.store.UpdateStaticPageBySlug(slug, fields); err != nil {
		fail(c, err)
		return
	}
	page, err := s.store.GetStaticPageBySlug(slug)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) deleteStaticPage(c *gin.Context) {
	if err := s.store.DeleteStaticPageBySlug(c.Param("slug")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Homepage content ---

type homepageContentCreate struct {
	SectionKey string `json:"sectionKey" binding:"required"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	ImageURL   string `json:"imageUrl"`
}

type homepageContentUpdate struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	ImageURL *string `json:"imageUrl"`
}

func (s *Server) listHomepageContent(c *gin.Context) {
	sections, err := s.store.ListHomepageContent()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (s *Server) getHomepageContent(c *gin.Context) {
	section, err := s.store.GetHomepageContent(c.Param("key"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (s *Server) createHomepageContent(c *gin.Context) {
	var req homepageContentCreate
	if !bindJSON(c, &req) {
		return
	}
	section := models.HomepageContent{
		SectionKey: req.SectionKey,
		Title:      req.Title,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
	}
	if err := s.store.CreateHomepageContent(&section); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, section)
}

func (s *Server) updateHomepageContent(c *gin.Context) {
	key := c.Param("key")
	var req homepageContentUpdate
	if !bindJSON(c, &req) {
		return
	}
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if err := s.store.UpdateHomepageContent(key, fields); err != nil {
		fail(c, err)
		return
	}
	section, err := s.store.GetHomepageContent(key)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, section)
}

// --- Site settings ---

type siteSettingUpdate struct {
	Value       *string `json:"value"`
	Type        *string `json:"type" binding:"omitempty,oneof=text image json boolean"`
	Description *string `json:"description"`
}

func (s *Server) listSiteSettings(c *gin.Context) {
	settings, err := s.store.ListSiteSettings()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) getSiteSetting(c *gin.Context) {
	setting, err := s.store.GetSiteSetting(c.Param("key"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (s *Server) updateSiteSetting(c *gin.Context) {
	key := c.Param("key")
	var req siteSettingUpdate
	if !bindJSON(c, &req) {
		return
	}
	fields := map[string]any{}
	if req.Value != nil {
		fields["value"] = *req.Value
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if err := s.store.UpdateSiteSetting(key, fields); err != nil {
		fail(c, err)
		return
	}
	setting, err := s.store.GetSiteSetting(key)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

// --- Menu items ---

type menuItemCreate struct {
	Title    string `json:"title" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Order    int    `json:"order"`
	ParentID *uint  `json:"parentId"`
	IsActive *bool  `json:"isActive"`
}

type menuItemUpdate struct {
	Title    *string `json:"title"`
	URL      *string `json:"url"`
	Order    *int    `json:"order"`
	ParentID *uint   `json:"parentId"`
	IsActive *bool   `json:"isActive"`
}

// getMenuTree is the public menu: active items nested under their parents.
func (s *Server) getMenuTree(c *gin.Context) {
	items, err := s.store.ListMenuItems()
	if err != nil {
		fail(c, err)
		return
	}
	active := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.IsActive {
			active = append(active, item)
		}
	}
	c.JSON(http.StatusOK, store.BuildMenuTree(active))
}

// listMenuItems is the flat ordered list for the admin panel.
func (s *Server) listMenuItems(c *gin.Context) {
	items, err := s.store.ListMenuItems()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) createMenuItem(c *gin.Context) {
	var req menuItemCreate
	if !bindJSON(c, &req) {
		return
	}
	item := models.MenuItem{Title: req.Title, URL: req.URL, Order: req.Order, IsActive: true}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if req.ParentID != nil {
		parent, err := s.store.GetMenuItem(*req.ParentID)
		if err != nil {
			fail(c, err)
			return
		}
		item.ParentID = &parent.ID
	}
	if err := s.store.CreateMenuItem(&item); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) updateMenuItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req menuItemUpdate
	if !bindJSON(c, &req) {
		return
	}
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.URL != nil {
		fields["url"] = *req.URL
	}
	if req.Order != nil {
		fields["order"] = *req.Order
	}
	if req.ParentID != nil {
		// Re-parenting must not introduce a cycle.
		valid, err := s.store.MenuItemParentValid(id, *req.ParentID)
		if err != nil {
			fail(c, err)
			return
		}
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent: unknown item or would create a cycle"})
			return
		}
		fields["parent_id"] = *req.ParentID
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if err := s.store.UpdateMenuItem(id, fields); err != nil {
		fail(c, err)
		return
	}
	item, err := s.store.GetMenuItem(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) deleteMenuItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteMenuItem(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- Slider items ---

type sliderItemCreate struct {
	Title       string `json:"title" binding:"required"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ButtonText  string `json:"buttonText"`
	ButtonURL   string `json:"buttonUrl"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

type sliderItemUpdate struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	ButtonText  *string `json:"buttonText"`
	ButtonURL   *string `json:"buttonUrl"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

func (s *Server) listActiveSliderItems(c *gin.Context) {
	items, err := s.store.ListActiveSliderItems()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) listSliderItems(c *gin.Context) {
	items, err := s.store.ListSliderItems()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) createSliderItem(c *gin.Context) {
	var req sliderItemCreate
	if !bindJSON(c, &req) {
		return
	}
	item := models.SliderItem{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ButtonText:  req.ButtonText,
		ButtonURL:   req.ButtonURL,
		Order:       req.Order,
		IsActive:    true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := s.store.CreateSliderItem(&item); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) updateSliderItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req sliderItemUpdate
	if !bindJSON(c, &req) {
		return
	}
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Subtitle != nil {
		fields["subtitle"] = *req.Subtitle
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.ButtonText != nil {
		fields["button_text"] = *req.ButtonText
	}
	if req.ButtonURL != nil {
		fields["button_url"] = *req.ButtonURL
	}
	if req.Order != nil {
		fields["order"] = *req.Order
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if err := s.store.UpdateSliderItem(id, fields); err != nil {
		fail(c, err)
		return
	}
	item, err := s.store.GetSliderItem(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) deleteSliderItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteSliderItem(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
