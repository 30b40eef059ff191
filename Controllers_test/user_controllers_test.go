package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-reservation/router"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)

	w := performJSON(r, "POST", "/register", map[string]interface{}{
		"name":     "Host Staff",
		"email":    "host@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(r, "POST", "/login", map[string]interface{}{
		"email":    "host@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token    string `json:"token"`
		UserRole string `json:"user_role"`
	}
	env := decodeEnvelope(t, w)
	assert.NoError(t, json.Unmarshal(env.Data, &login))
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "staff", login.UserRole)

	// token opens the admin group
	req, _ := http.NewRequest("GET", "/admin/profile", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)

	w := performJSON(r, "POST", "/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminGroupRequiresToken(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)

	req, _ := http.NewRequest("GET", "/admin/stats", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
