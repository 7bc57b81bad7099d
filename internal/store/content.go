package store

import (
	"github.com/enotalexnot/ztk-catalog/internal/models"
)

// --- News ---

func (s *Store) ListNews() ([]models.News, error) {
	var news []models.News
	err := s.db.Order("published_at desc").Find(&news).Error
	return news, err
}

func (s *Store) GetNews(id uint) (*models.News, error) {
	var n models.News
	if err := s.db.First(&n, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &n, nil
}

func (s *Store) CreateNews(n *models.News) error {
	return s.db.Create(n).Error
}

func (s *Store) UpdateNews(id uint, fields map[string]any) error {
	return s.updateRows(&models.News{}, "id = ?", id, fields)
}

func (s *Store) DeleteNews(id uint) error {
	return checkAffected(s.db.Delete(&models.News{}, id))
}

// --- Articles ---

func (s *Store) ListArticles() ([]models.Article, error) {
	var articles []models.Article
	err := s.db.Order("published_at desc").Find(&articles).Error
	return articles, err
}

func (s *Store) GetArticle(id uint) (*models.Article, error) {
	var a models.Article
	if err := s.db.First(&a, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

func (s *Store) CreateArticle(a *models.Article) error {
	return s.db.Create(a).Error
}

func (s *Store) UpdateArticle(id uint, fields map[string]any) error {
	return s.updateRows(&models.Article{}, "id = ?", id, fields)
}

func (s *Store) DeleteArticle(id uint) error {
	return checkAffected(s.db.Delete(&models.Article{}, id))
}

// --- Partners ---

func (s *Store) ListPartners() ([]models.Partner, error) {
	var partners []models.Partner
	err := s.db.Order("id asc").Find(&partners).Error
	return partners, err
}

func (s *Store) GetPartner(id uint) (*models.Partner, error) {
	var p models.Partner
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &p, nil
}

func (s *Store) CreatePartner(p *models.Partner) error {
	return s.db.Create(p).Error
}

func (s *Store) UpdatePartner(id uint, fields map[string]any) error {
	return s.updateRows(&models.Partner{}, "id = ?", id, fields)
}

func (s *Store) DeletePartner(id uint) error {
	return checkAffected(s.db.Delete(&models.Partner{}, id))
}

// --- Static pages ---

func (s *Store) ListStaticPages() ([]models.StaticPage, error) {
	var pages []models.StaticPage
	err := s.db.Order("id asc").Find(&pages).Error
	return pages, err
}

func (s *Store) GetStaticPageBySlug(slug string) (*models.StaticPage, error) {
	var page models.StaticPage
	if err := s.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		return nil, translateErr(err)
	}
	return &page, nil
}

func (s *Store) CreateStaticPage(page *models.StaticPage) error {
	return s.db.Create(page).Error
}

func (s *Store) UpdateStaticPageBySlug(slug string, fields map[string]any) error {
	return s.updateRows(&models.StaticPage{}, "slug = ?", slug, fields)
}

func (s *Store) DeleteStaticPageBySlug(slug string) error {
	return checkAffected(s.db.Where("slug = ?", slug).Delete(&models.StaticPage{}))
}

// --- Homepage content ---

func (s *Store) ListHomepageContent() ([]models.HomepageContent, error) {
	var sections []models.HomepageContent
	err := s.db.Order("id asc").Find(&sections).Error
	return sections, err
}

func (s *Store) GetHomepageContent(sectionKey string) (*models.HomepageContent, error) {
	var section models.HomepageContent
	if err := s.db.Where("section_key = ?", sectionKey).First(&section).Error; err != nil {
		return nil, translateErr(err)
	}
	return &section, nil
}

func (s *Store) CreateHomepageContent(section *models.HomepageContent) error {
	return s.db.Create(section).Error
}

func (s *Store) UpdateHomepageContent(sectionKey string, fields map[string]any) error {
	return s.updateRows(&models.HomepageContent{}, "section_key = ?", sectionKey, fields)
}

// --- Site settings ---

func (s *Store) ListSiteSettings() ([]models.SiteSetting, error) {
	var settings []models.SiteSetting
	err := s.db.Order("key asc").Find(&settings).Error
	return settings, err
}

func (s *Store) GetSiteSetting(key string) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, translateErr(err)
	}
	return &setting, nil
}

func (s *Store) UpdateSiteSetting(key string, fields map[string]any) error {
	return s.updateRows(&models.SiteSetting{}, "key = ?", key, fields)
}

// --- Menu items ---

// ListMenuItems returns the flat list ordered by the sort attribute; ties
// break by id so the sequence is deterministic.
func (s *Store) ListMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.Order("\"order\" asc, id asc").Find(&items).Error
	return items, err
}

func (s *Store) GetMenuItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &item, nil
}

func (s *Store) CreateMenuItem(item *models.MenuItem) error {
	return s.db.Create(item).Error
}

func (s *Store) UpdateMenuItem(id uint, fields map[string]any) error {
	return s.updateRows(&models.MenuItem{}, "id = ?", id, fields)
}

func (s *Store) DeleteMenuItem(id uint) error {
	return checkAffected(s.db.Delete(&models.MenuItem{}, id))
}

// --- Slider items ---

// ListActiveSliderItems is the public-facing query: active rows only.
func (s *Store) ListActiveSliderItems() ([]models.SliderItem, error) {
	var items []models.SliderItem
	err := s.db.Where("is_active = ?", true).Order("\"order\" asc, id asc").Find(&items).Error
	return items, err
}

// ListSliderItems is the unfiltered administrative variant.
func (s *Store) ListSliderItems() ([]models.SliderItem, error) {
	var items []models.SliderItem
	err := s.db.Order("\"order\" asc, id asc").Find(&items).Error
	return items, err
}

func (s *Store) GetSliderItem(id uint) (*models.SliderItem, error) {
	var item models.SliderItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &item, nil
}

func (s *Store) CreateSliderItem(item *models.SliderItem) error {
	return s.db.Create(item).Error
}

func (s *Store) UpdateSliderItem(id uint, fields map[string]any) error {
	return s.updateRows(&models.SliderItem{}, "id = ?", id, fields)
}

func (s *Store) DeleteSliderItem(id uint) error {
	return checkAffected(s.db.Delete(&models.SliderItem{}, id))
}
