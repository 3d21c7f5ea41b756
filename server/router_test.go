package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performJSON(t, router, http.MethodGet, "/api/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message": "Route Not Found."}`, w.Body.String())
}

func TestAllListEndpointsRespond(t *testing.T) {
	router, _ := newTestRouter(t)

	paths := []string{
		"/api/activities",
		"/api/categories",
		"/api/news",
		"/api/comments",
		"/api/contacts",
		"/api/members",
		"/api/projects",
		"/api/slides",
		"/api/socialmediaitems",
		"/api/testimonials",
		"/api/users",
		"/api/roles",
	}
	for _, path := range paths {
		w := performJSON(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		require.True(t, decodeEnvelope(t, w).Success, path)
	}
}

func TestNonNumericIDAnswersNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performJSON(t, router, http.MethodGet, "/api/activities/abc", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Activity not found", decodeEnvelope(t, w).Error)
}

func TestPatchIsPartialUpdate(t *testing.T) {
	router, _ := newTestRouter(t)

	created := createCategory(t, router, "Sports")

	w := performJSON(t, router, http.MethodPatch, "/api/categories/1", map[string]any{
		"description": "patched",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var category struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	decodeData(t, w, &category)
	require.Equal(t, created.Name, category.Name)
	require.Equal(t, "patched", category.Description)
}
