package server

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app, _, _ := setupTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    "Bob@EXAMPLE.com",
		"password": "s3cret",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Token   string         `json:"token"`
		Account map[string]any `json:"account"`
	}
	decodeBody(t, resp, &body)

	assert.NotEmpty(t, body.Token)
	// Domain is canonicalized, local part preserved.
	assert.Equal(t, "Bob@example.com", body.Account["email"])
	// Password is write-only and never echoed.
	assert.NotContains(t, body.Account, "password")
}

func TestRegisterValidation(t *testing.T) {
	app, _, _ := setupTestServer(t)

	tests := []struct {
		name      string
		payload   fiber.Map
		badFields []string
	}{
		{
			name:      "missing everything",
			payload:   fiber.Map{},
			badFields: []string{"email", "password"},
		},
		{
			name:      "malformed email",
			payload:   fiber.Map{"email": "nope", "password": "s3cret"},
			badFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", tt.payload)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var body struct {
				Error  string   `json:"error"`
				Code   string   `json:"code"`
				Fields []string `json:"fields"`
			}
			decodeBody(t, resp, &body)
			assert.Equal(t, "VALIDATION_ERROR", body.Code)
			assert.ElementsMatch(t, tt.badFields, body.Fields)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _, _ := setupTestServer(t)
	registerAccount(t, app, "bob@example.com")

	// Same address modulo domain case collides on the unique index.
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    "bob@EXAMPLE.COM",
		"password": "other",
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "CONSTRAINT_VIOLATION", body.Code)
}

func TestLogin(t *testing.T) {
	app, _, _ := setupTestServer(t)
	registerAccount(t, app, "bob@example.com")

	tests := []struct {
		name           string
		payload        fiber.Map
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			payload:        fiber.Map{"email": "bob@example.com", "password": "s3cret"},
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "uppercase domain still matches",
			payload:        fiber.Map{"email": "bob@EXAMPLE.COM", "password": "s3cret"},
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "wrong password",
			payload:        fiber.Map{"email": "bob@example.com", "password": "nope"},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "unknown account",
			payload:        fiber.Map{"email": "ghost@example.com", "password": "s3cret"},
			expectedStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", tt.payload)
			defer resp.Body.Close()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	app, db, _ := setupTestServer(t)
	registerAccount(t, app, "bob@example.com")

	require.NoError(t, db.Exec("UPDATE accounts SET is_active = ? WHERE email = ?", false, "bob@example.com").Error)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "bob@example.com",
		"password": "s3cret",
	})
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAccountEndpoints(t *testing.T) {
	app, db, _ := setupTestServer(t)
	token, id := registerAccount(t, app, "bob@example.com")

	resp := doJSON(t, app, http.MethodGet, "/api/accounts/me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var me map[string]any
	decodeBody(t, resp, &me)
	assert.EqualValues(t, id, me["id"])
	assert.Equal(t, "bob@example.com", me["email"])

	resp = doJSON(t, app, http.MethodDelete, "/api/accounts/me", token, nil)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var count int64
	require.NoError(t, db.Table("accounts").Where("id = ?", id).Count(&count).Error)
	assert.Zero(t, count)
}
