package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editorial-cms/models"
)

func TestPatchUserPartialUpdate(t *testing.T) {
	userRepo := newFakeUserRepo(&models.User{
		ID: 1, Name: "A", Status: "X", Role: "writer", Email: "a@example.com",
	})
	svc := NewUserService(userRepo)

	dto, err := svc.PatchUser(1, models.UserPatchForm{Status: "Y"})
	require.NoError(t, err)

	assert.Equal(t, "A", dto.Name, "absent field left unchanged")
	assert.Equal(t, "Y", dto.Status, "present field overwritten")
	assert.Equal(t, "writer", dto.Role)
	assert.Equal(t, "a@example.com", dto.Email)
}

func TestPatchUserAllFields(t *testing.T) {
	userRepo := newFakeUserRepo(&models.User{
		ID: 1, Name: "A", Status: "X", Role: "writer", Email: "a@example.com",
	})
	svc := NewUserService(userRepo)

	dto, err := svc.PatchUser(1, models.UserPatchForm{
		Name: "B", Status: "Z", Role: "editor", Email: "b@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, models.UserDTO{
		ID: 1, Name: "B", Status: "Z", Role: "editor", Email: "b@example.com",
	}, *dto)
}

func TestPatchUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.PatchUser(9, models.UserPatchForm{Name: "B"})

	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestPatchUserConflictReRaised(t *testing.T) {
	userRepo := newFakeUserRepo(&models.User{ID: 1, Name: "A", Email: "a@example.com"})
	userRepo.updateErr = errors.New("serialization failure")
	svc := NewUserService(userRepo)

	_, err := svc.PatchUser(1, models.UserPatchForm{Name: "B"})

	var storageErr *models.StorageError
	require.ErrorAs(t, err, &storageErr, "conflict with the row still present is re-raised")
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, svc.DeleteUser(5), &notFoundErr)
}

func TestGetUsersReturnsDTOs(t *testing.T) {
	userRepo := newFakeUserRepo(
		&models.User{ID: 1, Name: "A", Email: "a@example.com", Status: "A", ImageURL: "http://cdn.test/images/a.png"},
	)
	svc := NewUserService(userRepo)

	dtos, err := svc.GetUsers()
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "A", dtos[0].Name)
}
