package services

import (
	"net/http"
	"testing"

	"gigboard_backend/internal/models"
	"gigboard_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db), &memStorage{})
	return svc, db
}

func TestGetUsersByType_ListsOnlyRequestedType(t *testing.T) {
	svc, db := newUserService(t)

	company := createCompany(t, db, "Acme")
	createWorker(t, db, "Alice", "alice@example.com")
	createWorker(t, db, "Bob", "bob@example.com")
	createEmployer(t, db, "emma@example.com", company.ID)

	resp, err := svc.GetUsersByType(string(models.UserTypeWorker), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
	require.Len(t, resp.Users, 2)
	for _, u := range resp.Users {
		assert.Equal(t, string(models.UserTypeWorker), u.UserType)
	}
}

func TestGetUsersByType_UnknownType(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.GetUsersByType("Robot", 1, 20)
	assertHTTPCode(t, err, http.StatusBadRequest)
}

func TestDeleteUser_RemovesRow(t *testing.T) {
	svc, db := newUserService(t)

	worker := createWorker(t, db, "Alice", "alice@example.com")
	require.NoError(t, svc.DeleteUser(worker.ID))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)

	assertHTTPCode(t, svc.DeleteUser(worker.ID), http.StatusNotFound)
}

func TestToggleUserActive_FlipsAndPersists(t *testing.T) {
	svc, db := newUserService(t)

	worker := createWorker(t, db, "Alice", "alice@example.com")
	require.True(t, worker.IsActive)

	resp, err := svc.ToggleUserActive(worker.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", worker.ID).Error)
	assert.False(t, stored.IsActive, "the explicit false must survive the write")

	resp, err = svc.ToggleUserActive(worker.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
}

func TestToggleUserActive_UnknownUser(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.ToggleUserActive("missing")
	assertHTTPCode(t, err, http.StatusNotFound)
}
