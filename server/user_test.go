package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/somosmas/ong-api/model"
)

func TestCreateUser(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "Jane",
		"email":    "jane@example.com",
		"password": "123456",
		"role_id":  model.AdminRoleID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var view userView
	decodeData(t, w, &view)
	require.Equal(t, "Jane", view.Name)
	require.Len(t, view.Roles, 1)
	require.Equal(t, "Admin", view.Roles[0].Name)

	require.NotContains(t, w.Body.String(), "password")
}

func TestCreateUserWithUnknownRole(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "Jane",
		"email":    "jane@example.com",
		"password": "123456",
		"role_id":  99,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Role not found", decodeEnvelope(t, w).Error)
}

func TestCreateUserRequiresRole(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "Jane",
		"email":    "jane@example.com",
		"password": "123456",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	router, s := newTestRouter(t)
	createUserWithRole(t, s, "jane@example.com", model.UserRoleID)

	w := performJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "Jane Again",
		"email":    "jane@example.com",
		"password": "123456",
		"role_id":  model.UserRoleID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, decodeEnvelope(t, w).Success)
}

func TestListUsersDefaultLimit(t *testing.T) {
	router, s := newTestRouter(t)
	for i := 0; i < 7; i++ {
		createUserWithRole(t, s, fmt.Sprintf("user%d@example.com", i), model.UserRoleID)
	}

	w := performJSON(t, router, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []userView
	decodeData(t, w, &views)
	require.Len(t, views, 5)

	w = performJSON(t, router, http.MethodGet, "/api/users?limit=7", nil)
	decodeData(t, w, &views)
	require.Len(t, views, 7)

	// An explicit limit is taken at face value, zero included.
	w = performJSON(t, router, http.MethodGet, "/api/users?limit=0", nil)
	decodeData(t, w, &views)
	require.Empty(t, views)
}

func TestListUsersSearchMatchesEmailExactly(t *testing.T) {
	router, s := newTestRouter(t)
	createUserWithRole(t, s, "jane@example.com", model.UserRoleID)
	createUserWithRole(t, s, "john@example.com", model.UserRoleID)

	w := performJSON(t, router, http.MethodGet, "/api/users?search=jane@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []userView
	decodeData(t, w, &views)
	require.Len(t, views, 1)
	require.Equal(t, "jane@example.com", views[0].Email)

	// Partial emails only match through the name column.
	w = performJSON(t, router, http.MethodGet, "/api/users?search=jane@", nil)
	decodeData(t, w, &views)
	require.Empty(t, views)
}

func TestUpdateUserReassignsRole(t *testing.T) {
	router, s := newTestRouter(t)
	user := createUserWithRole(t, s, "jane@example.com", model.UserRoleID)

	w := performJSON(t, router, http.MethodPut, fmt.Sprintf("/api/users/%d", user.ID), gin.H{
		"role_id": model.AdminRoleID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var view userView
	decodeData(t, w, &view)
	require.Len(t, view.Roles, 1)
	require.Equal(t, "Admin", view.Roles[0].Name)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	router, s := newTestRouter(t)
	user := createUserWithRole(t, s, "jane@example.com", model.UserRoleID)

	w := performJSON(t, router, http.MethodPut, fmt.Sprintf("/api/users/%d", user.ID), gin.H{
		"password": "changed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored model.User
	require.NoError(t, s.DB.First(&stored, user.ID).Error)
	require.False(t, strings.Contains(stored.Password, "changed"))

	w = performJSON(t, router, http.MethodPost, "/api/login", gin.H{
		"email":    "jane@example.com",
		"password": "changed",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteUser(t *testing.T) {
	router, s := newTestRouter(t)
	user := createUserWithRole(t, s, "jane@example.com", model.UserRoleID)

	w := performJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/users/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, router, http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "User not found", decodeEnvelope(t, w).Error)
}
