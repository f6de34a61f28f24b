package services

import (
	"errors"

	"gorm.io/gorm"

	"editorial-cms/models"
	"editorial-cms/repositories"
)

type CategoryService interface {
	CreateCategory(req models.CategoryRequest) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	UpdateCategory(id uint, req models.CategoryRequest) (*models.Category, error)
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	sectionRepo  repositories.SectionRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, sectionRepo repositories.SectionRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo, sectionRepo: sectionRepo}
}

func (s *categoryService) CreateCategory(req models.CategoryRequest) (*models.Category, error) {
	section, err := s.sectionRepo.GetByID(req.SectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewValidationError("the specified section does not exist")
		}
		return nil, models.NewStorageError("loading section", err)
	}

	category := &models.Category{Name: req.Name, SectionID: req.SectionID}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, models.NewStorageError("creating category", err)
	}

	category.Section = *section
	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, models.NewStorageError("loading categories", err)
	}
	return categories, nil
}

func (s *categoryService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("category not found")
		}
		return nil, models.NewStorageError("loading category", err)
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(id uint, req models.CategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("category not found")
		}
		return nil, models.NewStorageError("loading category", err)
	}

	section, err := s.sectionRepo.GetByID(req.SectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewValidationError("the specified section does not exist")
		}
		return nil, models.NewStorageError("loading section", err)
	}

	category.Name = req.Name
	category.SectionID = req.SectionID
	category.Section = *section

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, models.NewStorageError("updating category", err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("category not found")
		}
		return models.NewStorageError("loading category", err)
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return models.NewValidationError("the category still has articles; move or delete them first")
		}
		return models.NewStorageError("deleting category", err)
	}
	return nil
}
