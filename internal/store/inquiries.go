package store

import "github.com/enotalexnot/ztk-catalog/internal/models"

// ListInquiries returns contact submissions newest first, for the admin
// panel. There is no public read path for inquiries.
func (s *Store) ListInquiries() ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.db.Order("created_at desc, id desc").Find(&inquiries).Error
	return inquiries, err
}

func (s *Store) CreateInquiry(in *models.Inquiry) error {
	return s.db.Create(in).Error
}
