package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/somosmas/ong-api/model"
)

func TestRegister(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/register", gin.H{
		"email":                 "jane@example.com",
		"name":                  "Jane",
		"password":              "123456",
		"password_confirmation": "123456",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var view userView
	decodeData(t, w, &view)
	require.Equal(t, "jane@example.com", view.Email)
	require.Len(t, view.Roles, 1)
	require.Equal(t, "User", view.Roles[0].Name)
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/register", gin.H{
		"email":                 "jane@example.com",
		"name":                  "Jane",
		"password":              "123456",
		"password_confirmation": "654321",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	router, s := newTestRouter(t)
	createUserWithRole(t, s, "jane@example.com", model.UserRoleID)

	w := performJSON(t, router, http.MethodPost, "/api/register", gin.H{
		"email":                 "jane@example.com",
		"name":                  "Jane",
		"password":              "123456",
		"password_confirmation": "123456",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginIssuesToken(t *testing.T) {
	router, s := newTestRouter(t)
	createUserWithRole(t, s, "jane@example.com", model.UserRoleID)

	w := performJSON(t, router, http.MethodPost, "/api/login", gin.H{
		"email":    "jane@example.com",
		"password": "123456",
	})
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	require.True(t, env.Success)
	require.NotEmpty(t, env.Token)
	require.Equal(t, "Login successfully", env.Message)
}

func TestLoginUnknownEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/login", gin.H{
		"email":    "nobody@example.com",
		"password": "123456",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid Credentials", decodeEnvelope(t, w).Error)
}

func TestLoginWrongPassword(t *testing.T) {
	router, s := newTestRouter(t)
	createUserWithRole(t, s, "jane@example.com", model.UserRoleID)

	w := performJSON(t, router, http.MethodPost, "/api/login", gin.H{
		"email":    "jane@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Invalid Credentials", decodeEnvelope(t, w).Error)
}

func TestCurrentUser(t *testing.T) {
	router, s := newTestRouter(t)
	createUserWithRole(t, s, "jane@example.com", model.UserRoleID)
	token := loginAs(t, router, "jane@example.com")

	w := performAuthedJSON(t, router, http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view userView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Equal(t, "jane@example.com", view.Email)
}

func TestCurrentUserWithoutToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performJSON(t, router, http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Unauthenticated", decodeEnvelope(t, w).Error)
}

func TestCurrentUserWithBogusToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performAuthedJSON(t, router, http.MethodGet, "/api/user", "not-a-real-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
