package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"equipment-registry/pkg/service"
	"equipment-registry/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePermissionProvider struct {
	names []string
	err   error
}

func (f *fakePermissionProvider) GetRolePermissionsNames(ctx context.Context, roleID uint64) ([]string, error) {
	return f.names, f.err
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func newTestMiddleware(t *testing.T, names []string) (*AuthMiddleware, service.JWTService) {
	t.Helper()
	jwtSvc := service.NewJWTService("test-secret", time.Hour, time.Hour*24, zap.NewNop())
	return NewAuthMiddleware(jwtSvc, &fakePermissionProvider{names: names}, zap.NewNop()), jwtSvc
}

func doRequest(mw echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	return doRequestHandler(mw(okHandler), authHeader)
}

func doRequestHandler(h echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h(c)
	return rec
}

func TestAuth_MissingHeader(t *testing.T) {
	authMW, _ := newTestMiddleware(t, nil)
	rec := doRequest(authMW.Auth, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	authMW, _ := newTestMiddleware(t, nil)

	for _, header := range []string{"Token abc", "Bearer", "abc"} {
		rec := doRequest(authMW.Auth, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "заголовок: %q", header)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	authMW, _ := newTestMiddleware(t, nil)
	rec := doRequest(authMW.Auth, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_RefreshTokenRejected(t *testing.T) {
	authMW, jwtSvc := newTestMiddleware(t, nil)
	_, refreshToken, err := jwtSvc.GenerateTokens(42, 1)
	require.NoError(t, err)

	rec := doRequest(authMW.Auth, "Bearer "+refreshToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidTokenPutsIdentityIntoContext(t *testing.T) {
	authMW, jwtSvc := newTestMiddleware(t, nil)
	accessToken, _, err := jwtSvc.GenerateTokens(42, 7)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID, gotRoleID uint64
	handler := func(c echo.Context) error {
		ctx := c.Request().Context()
		gotUserID, _ = utils.GetUserIDFromCtx(ctx)
		gotRoleID, _ = utils.GetRoleIDFromCtx(ctx)
		return c.String(http.StatusOK, "ok")
	}

	err = authMW.Auth(handler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(42), gotUserID)
	assert.Equal(t, uint64(7), gotRoleID)
}

func TestAuthorizeAny_AllowsMatchingPermission(t *testing.T) {
	authMW, jwtSvc := newTestMiddleware(t, []string{"equipment:view"})
	accessToken, _, err := jwtSvc.GenerateTokens(42, 7)
	require.NoError(t, err)

	chain := authMW.Auth(func(c echo.Context) error {
		return authMW.AuthorizeAny("equipment:view")(okHandler)(c)
	})

	rec := doRequestHandler(chain, "Bearer "+accessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthorizeAny_SuperuserBypassesChecks(t *testing.T) {
	authMW, jwtSvc := newTestMiddleware(t, []string{Superuser})
	accessToken, _, err := jwtSvc.GenerateTokens(42, 1)
	require.NoError(t, err)

	chain := authMW.Auth(func(c echo.Context) error {
		return authMW.AuthorizeAny("equipment:delete")(okHandler)(c)
	})

	rec := doRequestHandler(chain, "Bearer "+accessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthorizeAny_DeniesMissingPermission(t *testing.T) {
	authMW, jwtSvc := newTestMiddleware(t, []string{"equipment:view"})
	accessToken, _, err := jwtSvc.GenerateTokens(42, 7)
	require.NoError(t, err)

	chain := authMW.Auth(func(c echo.Context) error {
		return authMW.AuthorizeAny("equipment:delete")(okHandler)(c)
	})

	rec := doRequestHandler(chain, "Bearer "+accessToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthorizeAny_WithoutAuthContext(t *testing.T) {
	authMW, _ := newTestMiddleware(t, []string{"equipment:view"})

	rec := doRequest(authMW.AuthorizeAny("equipment:view"), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
