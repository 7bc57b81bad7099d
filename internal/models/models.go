package models

import "time"

// Category groups products at the top level of the catalog.
type Category struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type Subcategory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  uint   `gorm:"index" json:"categoryId"`
}

// Product is a catalog item. Price is free text ("по запросу" is a valid
// price), Specifications is an open key/value bag stored as a JSON text
// column, Images and Files keep their submission order.
type Product struct {
	ID                  uint              `gorm:"primaryKey" json:"id"`
	Name                string            `json:"name"`
	Description         string            `json:"description"`
	CategoryID          uint              `gorm:"index" json:"categoryId"`
	SubcategoryID       *uint             `gorm:"index" json:"subcategoryId"`
	Price               string            `json:"price"`
	ImageURL            string            `json:"imageUrl"`
	Featured            bool              `json:"featured"`
	Specifications      map[string]string `gorm:"type:text;serializer:json" json:"specifications"`
	Model               string            `json:"model"`
	Brand               string            `json:"brand"`
	Images              []string          `gorm:"type:text;serializer:json" json:"images"`
	Files               []string          `gorm:"type:text;serializer:json" json:"files"`
	DetailedDescription string            `json:"detailedDescription"`
	Warranty            string            `json:"warranty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

type News struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	ImageURL    string    `json:"imageUrl"`
	PublishedAt time.Time `json:"publishedAt"`
}

type Article struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	ImageURL    string    `json:"imageUrl"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Inquiry is an inbound contact-form submission. Phone and Company stay
// null when the visitor leaves them out.
type Inquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type Admin struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `json:"-"`
}

// Session is a server-side row behind the opaque admin cookie. A session
// is either valid (now < ExpiresAt) or absent; there is no renewal.
type Session struct {
	Token     string    `gorm:"primaryKey" json:"-"`
	AdminID   uint      `gorm:"index" json:"adminId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type StaticPage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	TitleRu   string    `json:"titleRu"`
	TitleEn   string    `json:"titleEn"`
	ContentRu string    `json:"contentRu"`
	ContentEn string    `json:"contentEn"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Partner struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl"`
	WebsiteURL  string `json:"websiteUrl"`
	Description string `json:"description"`
}

type HomepageContent struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SectionKey string `gorm:"uniqueIndex;not null" json:"sectionKey"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	ImageURL   string `json:"imageUrl"`
}

// SiteSetting is one editable key of the site configuration. Type tags the
// value for the admin UI: text, image, json or boolean.
type SiteSetting struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Key         string `gorm:"uniqueIndex;not null" json:"key"`
	Value       string `json:"value"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// MenuItem rows are stored flat; nesting comes from ParentID and is built
// into a tree at read time.
type MenuItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Order    int    `gorm:"default:0" json:"order"`
	ParentID *uint  `gorm:"index" json:"parentId"`
	IsActive bool   `json:"isActive"`
}

type SliderItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ButtonText  string `json:"buttonText"`
	ButtonURL   string `json:"buttonUrl"`
	Order       int    `gorm:"default:0" json:"order"`
	IsActive    bool   `json:"isActive"`
}

// All lists every persisted entity for migration.
func All() []any {
	return []any{
		&Category{},
		&Subcategory{},
		&Product{},
		&News{},
		&Article{},
		&Inquiry{},
		&Admin{},
		&Session{},
		&StaticPage{},
		&Partner{},
		&HomepageContent{},
		&SiteSetting{},
		&MenuItem{},
		&SliderItem{},
	}
}
