package repositories

import (
	"editorial-cms/models"

	"gorm.io/gorm"
)

type SectionRepository interface {
	Create(section *models.Section) error
	GetByID(id uint) (*models.Section, error)
	GetAll() ([]models.Section, error)
}

type sectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) Create(section *models.Section) error {
	return r.db.Create(section).Error
}

func (r *sectionRepository) GetByID(id uint) (*models.Section, error) {
	var section models.Section
	err := r.db.First(&section, id).Error
	return &section, err
}

func (r *sectionRepository) GetAll() ([]models.Section, error) {
	var sections []models.Section
	err := r.db.Find(&sections).Error
	return sections, err
}
