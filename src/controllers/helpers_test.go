package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/library-backend/src/models"
	"github.com/openshelf/library-backend/src/routes"
	"github.com/openshelf/library-backend/src/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires the full route table against an in-memory store, the same
// way main does against postgres.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.BookModel{},
		&models.UserModel{},
		&models.RequestedBookModel{},
		&models.MembershipModel{},
	))

	router := gin.New()
	routes.SetupHealthRoutes(router, services.NewHealthService(db))
	routes.SetupBookRoutes(router, services.NewBookService(db))
	routes.SetupUserRoutes(router, services.NewUserService(db))
	routes.SetupRequestedBookRoutes(router, services.NewRequestedBookService(db))
	validator := services.NewMembershipValidator(db)
	routes.SetupMembershipRoutes(router, services.NewMembershipService(db, validator))

	return router, db
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func createUserViaAPI(t *testing.T, router *gin.Engine) models.UserModel {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/users", gin.H{
		"username": "alice", "email": "a@x.com", "phone_no": "123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var user models.UserModel
	decodeJSON(t, rec, &user)
	return user
}

func createBookViaAPI(t *testing.T, router *gin.Engine) models.BookModel {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/books", gin.H{
		"title": "Dune", "isbn": "0001", "author": "Herbert",
		"publication_date": "1965-01-01", "borrowed": false,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var book models.BookModel
	decodeJSON(t, rec, &book)
	return book
}
