package server

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/somosmas/ong-api/model"
)

func TestCreateContact(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/contacts", gin.H{
		"name":    "Marcos",
		"email":   "marcos@gmail.com",
		"phone":   "11111",
		"message": "mensaje de marcos",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var contact model.Contact
	env := decodeData(t, w, &contact)
	require.True(t, env.Success)
	require.Equal(t, "Marcos", contact.Name)
	require.Equal(t, "marcos@gmail.com", contact.Email)
	require.NotZero(t, contact.ID)
}

func TestCreateContactMissingRequiredField(t *testing.T) {
	router, _ := newTestRouter(t)

	// no email
	w := performJSON(t, router, http.MethodPost, "/api/contacts", gin.H{
		"name":    "Marcos",
		"phone":   "11111",
		"message": "mensaje de marcos",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, decodeEnvelope(t, w).Success)
}

func TestCreateContactRejectsBadEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/contacts", gin.H{
		"name":    "Marcos",
		"email":   "not-an-email",
		"phone":   "11111",
		"message": "mensaje de marcos",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShowContactNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performJSON(t, router, http.MethodGet, "/api/contacts/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Contact not found", decodeEnvelope(t, w).Error)
}

func TestUpdateContactIsPartial(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/contacts", gin.H{
		"name":    "Marcos",
		"email":   "marcos@gmail.com",
		"phone":   "11111",
		"message": "mensaje de marcos",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var created model.Contact
	decodeData(t, w, &created)

	w = performJSON(t, router, http.MethodPut, "/api/contacts/1", gin.H{"name": "Marta"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Contact
	decodeData(t, w, &updated)
	require.Equal(t, "Marta", updated.Name)
	require.Equal(t, created.Email, updated.Email)
	require.Equal(t, created.Phone, updated.Phone)
	require.Equal(t, created.Message, updated.Message)
}

func TestDeleteContactMakesItUnreachable(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performJSON(t, router, http.MethodPost, "/api/contacts", gin.H{
		"name":    "Marcos",
		"email":   "marcos@gmail.com",
		"phone":   "11111",
		"message": "mensaje de marcos",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, router, http.MethodDelete, "/api/contacts/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var deleted model.Contact
	decodeData(t, w, &deleted)
	require.Equal(t, "Marcos", deleted.Name)

	w = performJSON(t, router, http.MethodGet, "/api/contacts/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
