package services

import (
	"errors"

	"gorm.io/gorm"

	"editorial-cms/models"
	"editorial-cms/repositories"
)

type UserService interface {
	GetUsers() ([]models.UserDTO, error)
	GetUser(id uint) (*models.User, error)
	PatchUser(id uint, form models.UserPatchForm) (*models.UserDTO, error)
	DeleteUser(id uint) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUsers() ([]models.UserDTO, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, models.NewStorageError("loading users", err)
	}

	dtos := make([]models.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, models.UserDTO{
			ID:     u.ID,
			Name:   u.Name,
			Role:   u.Role,
			Email:  u.Email,
			Status: u.Status,
		})
	}
	return dtos, nil
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("user not found")
		}
		return nil, models.NewStorageError("loading user", err)
	}
	return user, nil
}

// PatchUser overwrites only the fields present and non-empty in the form;
// empty fields leave the stored values untouched.
func (s *userService) PatchUser(id uint, form models.UserPatchForm) (*models.UserDTO, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("user not found")
		}
		return nil, models.NewStorageError("loading user", err)
	}

	if form.Name != "" {
		user.Name = form.Name
	}
	if form.Status != "" {
		user.Status = form.Status
	}
	if form.Role != "" {
		user.Role = form.Role
	}
	if form.Email != "" {
		user.Email = form.Email
	}

	if err := s.userRepo.Update(user); err != nil {
		// Re-check existence once: a concurrent delete becomes a 404,
		// anything else is re-raised as-is.
		exists, exErr := s.userRepo.Exists(id)
		if exErr == nil && !exists {
			return nil, models.NewNotFoundError("user not found")
		}
		return nil, models.NewStorageError("updating user", err)
	}

	return &models.UserDTO{
		ID:     user.ID,
		Name:   user.Name,
		Role:   user.Role,
		Email:  user.Email,
		Status: user.Status,
	}, nil
}

func (s *userService) DeleteUser(id uint) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("user not found")
		}
		return models.NewStorageError("loading user", err)
	}

	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return models.NewValidationError("the user is still linked to articles; remove the author links first")
		}
		return models.NewStorageError("deleting user", err)
	}
	return nil
}
