package services

import (
	"errors"

	"gorm.io/gorm"

	"editorial-cms/models"
	"editorial-cms/repositories"
)

type TagService interface {
	CreateTag(req models.TagRequest) (*models.Tag, error)
	GetTags() ([]models.Tag, error)
	GetTag(id uint) (*models.Tag, error)
	DeleteTag(id uint) error
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateTag(req models.TagRequest) (*models.Tag, error) {
	_, err := s.tagRepo.GetByName(req.Name)
	if err == nil {
		return nil, models.NewValidationError("tag already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewStorageError("loading tag", err)
	}

	tag := &models.Tag{Name: req.Name, Status: req.Status}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, models.NewStorageError("creating tag", err)
	}
	return tag, nil
}

func (s *tagService) GetTags() ([]models.Tag, error) {
	tags, err := s.tagRepo.GetAll()
	if err != nil {
		return nil, models.NewStorageError("loading tags", err)
	}
	return tags, nil
}

func (s *tagService) GetTag(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("tag not found")
		}
		return nil, models.NewStorageError("loading tag", err)
	}
	return tag, nil
}

func (s *tagService) DeleteTag(id uint) error {
	if _, err := s.tagRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("tag not found")
		}
		return models.NewStorageError("loading tag", err)
	}

	if err := s.tagRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return models.NewValidationError("the tag is still linked to articles; remove the links first")
		}
		return models.NewStorageError("deleting tag", err)
	}
	return nil
}
