package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umisachi/fishing-charter-booking/internal/model"
	"github.com/umisachi/fishing-charter-booking/internal/utils"
)

const testSecret = "test-secret"

func runWithAuth(t *testing.T, header string, mw ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured echo.Context
	h := func(c echo.Context) error {
		captured = c
		return c.NoContent(http.StatusOK)
	}
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	require.NoError(t, h(c))
	return rec, captured
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, model.RoleCustomer, 5)
	require.NoError(t, err)

	rec, captured := runWithAuth(t, "Bearer "+tok.Token, JWTAuth(testSecret))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	// JSON numbers decode as float64
	assert.Equal(t, float64(42), captured.Get("user_id"))
	assert.Equal(t, model.RoleCustomer, captured.Get("role"))
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _ := runWithAuth(t, "", JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("another-secret", 42, model.RoleCustomer, 5)
	require.NoError(t, err)

	rec, _ := runWithAuth(t, "Bearer "+tok.Token, JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, model.RoleBoatOwner, 5)
	require.NoError(t, err)

	rec, _ := runWithAuth(t, "Bearer "+tok.Token,
		JWTAuth(testSecret), RequireRole(model.RoleBoatOwner, model.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, model.RoleCustomer, 5)
	require.NoError(t, err)

	rec, _ := runWithAuth(t, "Bearer "+tok.Token,
		JWTAuth(testSecret), RequireRole(model.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequireRole(model.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestContextUserIDConversions(t *testing.T) {
	e := echo.New()
	cases := []struct {
		name string
		val  interface{}
		want uint64
	}{
		{"float64", float64(9), 9},
		{"uint64", uint64(11), 11},
		{"string", "13", 13},
		{"garbage", "abc", 0},
		{"missing", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			c := e.NewContext(req, httptest.NewRecorder())
			if tc.val != nil {
				c.Set("user_id", tc.val)
			}
			assert.Equal(t, tc.want, contextUserID(c))
		})
	}
}
