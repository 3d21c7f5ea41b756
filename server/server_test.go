package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/somosmas/ong-api/model"
	"github.com/somosmas/ong-api/storage"
	"github.com/somosmas/ong-api/utils"
)

// newTestRouter spins up the full route table against an in-memory
// sqlite database, migrated and seeded like a fresh deployment, with a
// throwaway directory as the image store.
func newTestRouter(t *testing.T) (*gin.Engine, *Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection so every query sees the same in-memory
	// database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, utils.AutoMigrate(db))
	require.NoError(t, utils.Seed(db))

	images, err := storage.NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	s := New(db, images)
	return s.Router(), s
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Token   string          `json:"token"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) envelope {
	t.Helper()
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, out))
	return env
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performAuthedJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// performMultipart sends a form with an optional fake png attached under
// fileField, the way a browser would upload an image.
func performMultipart(t *testing.T, router *gin.Engine, method, path string, fields map[string]string, fileField string) *httptest.ResponseRecorder {
	t.Helper()
	return performMultipartFile(t, router, method, path, fields, fileField, "image/png", []byte("not-really-a-png"))
}

// performMultipartFile is performMultipart with the attached file's
// declared content type and payload under the caller's control.
func performMultipartFile(t *testing.T, router *gin.Engine, method, path string, fields map[string]string, fileField, contentType string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="image.png"`, fileField))
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(payload)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// createUserWithRole inserts an account directly, bypassing the API, for
// tests that need a caller with a known role.
func createUserWithRole(t *testing.T, s *Server, email string, roleID uint) model.User {
	t.Helper()
	var role model.Role
	require.NoError(t, s.DB.First(&role, roleID).Error)

	hash, err := utils.HashPassword("123456")
	require.NoError(t, err)

	user := model.User{Name: "Test User", Email: email, Password: hash, Roles: []*model.Role{&role}}
	require.NoError(t, s.DB.Create(&user).Error)
	return user
}

func loginAs(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w := performJSON(t, router, http.MethodPost, "/api/login", gin.H{"email": email, "password": "123456"})
	require.Equal(t, http.StatusOK, w.Code)
	token := decodeEnvelope(t, w).Token
	require.NotEmpty(t, token)
	return token
}
