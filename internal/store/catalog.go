package store

import (
	"github.com/enotalexnot/ztk-catalog/internal/models"
)

// --- Categories ---

func (s *Store) ListCategories() ([]models.Category, error) {
	var cats []models.Category
	err := s.db.Order("id asc").Find(&cats).Error
	return cats, err
}

func (s *Store) GetCategory(id uint) (*models.Category, error) {
	var cat models.Category
	if err := s.db.First(&cat, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &cat, nil
}

func (s *Store) CreateCategory(cat *models.Category) error {
	return s.db.Create(cat).Error
}

func (s *Store) UpdateCategory(id uint, fields map[string]any) error {
	return s.updateRows(&models.Category{}, "id = ?", id, fields)
}

func (s *Store) DeleteCategory(id uint) error {
	return checkAffected(s.db.Delete(&models.Category{}, id))
}

// --- Subcategories ---

func (s *Store) ListSubcategories() ([]models.Subcategory, error) {
	var subs []models.Subcategory
	err := s.db.Order("id asc").Find(&subs).Error
	return subs, err
}

func (s *Store) ListSubcategoriesByCategory(categoryID uint) ([]models.Subcategory, error) {
	var subs []models.Subcategory
	err := s.db.Where("category_id = ?", categoryID).Order("id asc").Find(&subs).Error
	return subs, err
}

func (s *Store) GetSubcategory(id uint) (*models.Subcategory, error) {
	var sub models.Subcategory
	if err := s.db.First(&sub, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &sub, nil
}

func (s *Store) CreateSubcategory(sub *models.Subcategory) error {
	return s.db.Create(sub).Error
}

func (s *Store) UpdateSubcategory(id uint, fields map[string]any) error {
	return s.updateRows(&models.Subcategory{}, "id = ?", id, fields)
}

func (s *Store) DeleteSubcategory(id uint) error {
	return checkAffected(s.db.Delete(&models.Subcategory{}, id))
}

// --- Products ---

func (s *Store) ListProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Order("id asc").Find(&products).Error
	return products, err
}

func (s *Store) ListFeaturedProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("featured = ?", true).Order("id asc").Find(&products).Error
	return products, err
}

func (s *Store) ListProductsByCategory(categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("category_id = ?", categoryID).Order("id asc").Find(&products).Error
	return products, err
}

func (s *Store) ListProductsBySubcategory(subcategoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("subcategory_id = ?", subcategoryID).Order("id asc").Find(&products).Error
	return products, err
}

func (s *Store) GetProduct(id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &p, nil
}

func (s *Store) CreateProduct(p *models.Product) error {
	return s.db.Create(p).Error
}

// UpdateProduct applies only the given columns; gorm stamps updated_at in
// the same statement.
func (s *Store) UpdateProduct(id uint, fields map[string]any) error {
	return s.updateRows(&models.Product{}, "id = ?", id, fields)
}

func (s *Store) DeleteProduct(id uint) error {
	return checkAffected(s.db.Delete(&models.Product{}, id))
}
