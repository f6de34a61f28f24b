package services

import (
	"editorial-cms/models"
	"editorial-cms/repositories"
)

type SectionService interface {
	CreateSection(req models.SectionRequest) (*models.Section, error)
	GetSections() ([]models.Section, error)
}

type sectionService struct {
	sectionRepo repositories.SectionRepository
}

func NewSectionService(sectionRepo repositories.SectionRepository) SectionService {
	return &sectionService{sectionRepo: sectionRepo}
}

func (s *sectionService) CreateSection(req models.SectionRequest) (*models.Section, error) {
	section := &models.Section{Name: req.Name}
	if err := s.sectionRepo.Create(section); err != nil {
		return nil, models.NewStorageError("creating section", err)
	}
	return section, nil
}

func (s *sectionService) GetSections() ([]models.Section, error) {
	sections, err := s.sectionRepo.GetAll()
	if err != nil {
		return nil, models.NewStorageError("loading sections", err)
	}
	return sections, nil
}
