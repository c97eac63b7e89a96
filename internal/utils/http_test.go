package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{name: "Map data", statusCode: http.StatusOK, message: "Profile retrieved", data: map[string]interface{}{"credits": float64(100)}},
		{name: "Created", statusCode: http.StatusCreated, message: "User registered", data: map[string]interface{}{"user_id": "u1"}},
		{name: "Nil data", statusCode: http.StatusOK, message: "Success"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, SuccessResponse(c, tt.statusCode, tt.message, tt.data))
			assert.Equal(t, tt.statusCode, rec.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
			if tt.data != nil {
				assert.Equal(t, tt.data, resp.Data)
			} else {
				assert.NotContains(t, rec.Body.String(), `"data"`)
			}
		})
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c echo.Context) error
		wantStatus int
		wantError  string
	}{
		{name: "Bad request", call: func(c echo.Context) error { return BadRequestResponse(c, "Insufficient credits") }, wantStatus: http.StatusBadRequest, wantError: "Insufficient credits"},
		{name: "Unauthorized default", call: func(c echo.Context) error { return UnauthorizedResponse(c, "") }, wantStatus: http.StatusUnauthorized, wantError: "Unauthorized"},
		{name: "Not found default", call: func(c echo.Context) error { return NotFoundResponse(c, "") }, wantStatus: http.StatusNotFound, wantError: "Resource not found"},
		{name: "Conflict", call: func(c echo.Context) error { return ConflictResponse(c, "Email already registered") }, wantStatus: http.StatusConflict, wantError: "Email already registered"},
		{name: "Internal default", call: func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, wantStatus: http.StatusInternalServerError, wantError: "Internal server error"},
		{name: "Unavailable default", call: func(c echo.Context) error { return ServiceUnavailableResponse(c, "") }, wantStatus: http.StatusServiceUnavailable, wantError: "Service unavailable"},
		{name: "Custom code", call: func(c echo.Context) error { return ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded") }, wantStatus: http.StatusTooManyRequests, wantError: "Rate limit exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestParseJSONResponse(t *testing.T) {
	t.Run("Struct data", func(t *testing.T) {
		var target struct {
			Credits int `json:"credits"`
		}
		err := ParseJSONResponse([]byte(`{"success":true,"message":"ok","data":{"credits":100}}`), &target)
		require.NoError(t, err)
		assert.Equal(t, 100, target.Credits)
	})

	t.Run("Null data", func(t *testing.T) {
		target := "unchanged"
		require.NoError(t, ParseJSONResponse([]byte(`{"success":true,"data":null}`), &target))
		assert.Equal(t, "unchanged", target)
	})

	t.Run("Error envelope", func(t *testing.T) {
		err := ParseJSONResponse([]byte(`{"success":false,"error":"Insufficient credits","code":400}`), nil)
		assert.EqualError(t, err, "Insufficient credits")
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		assert.Error(t, ParseJSONResponse([]byte(`{invalid`), nil))
	})

	t.Run("Mismatched data", func(t *testing.T) {
		var target int
		assert.Error(t, ParseJSONResponse([]byte(`{"success":true,"data":"text"}`), &target))
	})
}
