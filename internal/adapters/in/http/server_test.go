package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"commerce/internal/core/domain/model/auth"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) Error {
	t.Helper()

	var body Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPrincipalMiddleware(t *testing.T) {
	handler := PrincipalMiddleware()(func(ctx echo.Context) error {
		principal, ok := principalFrom(ctx)
		if !ok {
			return ctx.NoContent(http.StatusInternalServerError)
		}
		return ctx.String(http.StatusOK, principal.Role().String())
	})

	t.Run("resolves principal from identity headers", func(t *testing.T) {
		ctx, rec := newContext(t, http.MethodGet, "/api/v1/orders")
		ctx.Request().Header.Set(HeaderUserID, "7")
		ctx.Request().Header.Set(HeaderUserRole, "admin")

		require.NoError(t, handler(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin", rec.Body.String())
	})

	t.Run("rejects missing headers", func(t *testing.T) {
		ctx, rec := newContext(t, http.MethodGet, "/api/v1/orders")

		require.NoError(t, handler(ctx))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, CodeUnauthenticated, decodeError(t, rec).Code)
	})

	t.Run("rejects non-numeric user id", func(t *testing.T) {
		ctx, rec := newContext(t, http.MethodGet, "/api/v1/orders")
		ctx.Request().Header.Set(HeaderUserID, "seven")
		ctx.Request().Header.Set(HeaderUserRole, "customer")

		require.NoError(t, handler(ctx))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		ctx, rec := newContext(t, http.MethodGet, "/api/v1/orders")
		ctx.Request().Header.Set(HeaderUserID, "7")
		ctx.Request().Header.Set(HeaderUserRole, "superuser")

		require.NoError(t, handler(ctx))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects non-positive user id", func(t *testing.T) {
		ctx, rec := newContext(t, http.MethodGet, "/api/v1/orders")
		ctx.Request().Header.Set(HeaderUserID, "0")
		ctx.Request().Header.Set(HeaderUserRole, "customer")

		require.NoError(t, handler(ctx))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found maps to 404",
			err:        errs.NewObjectNotFoundError("order_id", "abc"),
			wantStatus: http.StatusNotFound,
			wantCode:   CodeNotFound,
		},
		{
			name:       "forbidden maps to 403",
			err:        errs.NewForbiddenError("list orders"),
			wantStatus: http.StatusForbidden,
			wantCode:   CodeForbidden,
		},
		{
			name:       "invalid order maps to 409",
			err:        errs.NewInvalidOrderError("order is already in a terminal status"),
			wantStatus: http.StatusConflict,
			wantCode:   CodeInvalidOrder,
		},
		{
			name:       "conflict maps to 409 duplicate",
			err:        errs.NewConflictError("order already exists"),
			wantStatus: http.StatusConflict,
			wantCode:   CodeDuplicate,
		},
		{
			name:       "required value maps to 400",
			err:        errs.NewValueIsRequiredError("cancel_reason"),
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeValidationError,
		},
		{
			name:       "out of range maps to 400",
			err:        errs.NewValueIsOutOfRangeError("limit", 101, 1, 100),
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeValidationError,
		},
		{
			name:       "unknown error maps to 500",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newContext(t, http.MethodGet, "/")

			require.NoError(t, respondError(ctx, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}

	t.Run("validation detail names the failed field", func(t *testing.T) {
		ctx, rec := newContext(t, http.MethodGet, "/")

		require.NoError(t, respondError(ctx, errs.NewValueIsRequiredError("cancel_reason")))

		body := decodeError(t, rec)
		assert.Equal(t, "is required", body.Details["cancel_reason"])
	})
}

func TestServer_GetOrder_InvalidID(t *testing.T) {
	server := &Server{}

	ctx, rec := newContext(t, http.MethodGet, "/api/v1/orders/not-a-uuid")
	ctx.SetParamNames("id")
	ctx.SetParamValues("not-a-uuid")
	principal, err := auth.NewPrincipal(7, auth.RoleCustomer)
	require.NoError(t, err)
	ctx.Set(principalContextKey, principal)

	require.NoError(t, server.GetOrder(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, CodeValidationError, body.Code)
	assert.Contains(t, body.Details, "order_id")
}

func TestParseListFilter(t *testing.T) {
	t.Run("reads every parameter", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodGet,
			"/api/v1/orders?status=verified&userId=7&dateFrom=2026-08-01&dateTo=2026-08-30T23:59:59Z&limit=10&offset=20&sort=-created_at")

		filter, err := parseListFilter(ctx)
		require.NoError(t, err)

		assert.Equal(t, "verified", filter.Status)
		require.NotNil(t, filter.UserID)
		assert.Equal(t, int64(7), *filter.UserID)
		require.NotNil(t, filter.DateFrom)
		assert.Equal(t, "2026-08-01", filter.DateFrom.Format("2006-01-02"))
		require.NotNil(t, filter.DateTo)
		assert.Equal(t, 10, filter.Limit)
		assert.Equal(t, 20, filter.Offset)
		assert.Equal(t, "-created_at", filter.Sort)
	})

	t.Run("empty query yields zero filter", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodGet, "/api/v1/orders")

		filter, err := parseListFilter(ctx)
		require.NoError(t, err)

		assert.Nil(t, filter.UserID)
		assert.Zero(t, filter.Limit)
		assert.Zero(t, filter.Offset)
	})

	t.Run("rejects non-numeric userId", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodGet, "/api/v1/orders?userId=seven")

		_, err := parseListFilter(ctx)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodGet, "/api/v1/orders?dateFrom=yesterday")

		_, err := parseListFilter(ctx)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects non-numeric limit", func(t *testing.T) {
		ctx, _ := newContext(t, http.MethodGet, "/api/v1/orders?limit=many")

		_, err := parseListFilter(ctx)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
