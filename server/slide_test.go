package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/somosmas/ong-api/model"
)

func TestListSlidesSearch(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, name := range []string{"Welcome banner", "Donation banner", "Contact footer"} {
		w := performMultipart(t, router, http.MethodPost, "/api/slides", map[string]string{
			"name":        name,
			"description": "description of " + name,
			"order":       "1",
		}, "image")
		require.Equal(t, http.StatusOK, w.Code)
	}

	var slides []model.Slide
	w := performJSON(t, router, http.MethodGet, "/api/slides?search=banner", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &slides)
	require.Len(t, slides, 2)

	// Description only matches whole, name matches as a substring.
	w = performJSON(t, router, http.MethodGet, "/api/slides?search=description+of+Contact+footer", nil)
	decodeData(t, w, &slides)
	require.Len(t, slides, 1)
	require.Equal(t, "Contact footer", slides[0].Name)

	w = performJSON(t, router, http.MethodGet, "/api/slides?search=description+of", nil)
	decodeData(t, w, &slides)
	require.Empty(t, slides)
}

func TestCreateSlideRequiresOrder(t *testing.T) {
	router, _ := newTestRouter(t)

	w := performMultipart(t, router, http.MethodPost, "/api/slides", map[string]string{
		"name":        "Welcome banner",
		"description": "description",
	}, "image")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
