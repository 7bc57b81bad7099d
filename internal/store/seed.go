package store

import (
	"errors"

	"github.com/enotalexnot/ztk-catalog/internal/models"
)

var defaultHomepageSections = []models.HomepageContent{
	{SectionKey: "hero", Title: "Промышленное оборудование", Content: "Поставка и обслуживание промышленного оборудования"},
	{SectionKey: "about", Title: "О компании", Content: ""},
	{SectionKey: "advantages", Title: "Наши преимущества", Content: ""},
	{SectionKey: "contacts", Title: "Контакты", Content: ""},
}

var defaultSiteSettings = []models.SiteSetting{
	{Key: "site_name", Value: "ЗТК", Type: "text", Description: "Site name shown in the header"},
	{Key: "site_logo", Value: "", Type: "image", Description: "Header logo image"},
	{Key: "contact_email", Value: "", Type: "text", Description: "Contact e-mail"},
	{Key: "contact_phone", Value: "", Type: "text", Description: "Contact phone"},
	{Key: "address", Value: "", Type: "text", Description: "Office address"},
	{Key: "social_links", Value: "{}", Type: "json", Description: "Social network links"},
	{Key: "show_prices", Value: "true", Type: "boolean", Description: "Show product prices in the catalog"},
}

// Seed inserts the pre-defined homepage sections and site settings, leaving
// existing rows untouched so admin edits survive restarts.
func (s *Store) Seed() error {
	for _, section := range defaultHomepageSections {
		if _, err := s.GetHomepageContent(section.SectionKey); err == nil {
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}
		section := section
		if err := s.db.Create(&section).Error; err != nil {
			return err
		}
	}
	for _, setting := range defaultSiteSettings {
		if _, err := s.GetSiteSetting(setting.Key); err == nil {
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return err
		}
		setting := setting
		if err := s.db.Create(&setting).Error; err != nil {
			return err
		}
	}
	return nil
}
