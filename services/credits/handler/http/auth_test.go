package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/lotaya/internal/pkg/models"
	"github.com/piresc/lotaya/services/credits/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	authHandler := NewAuthHandler(mockUC)

	e := echo.New()
	requestBody := `{
		"name": "Aung Aung",
		"email": "aung@example.com",
		"firebase_uid": "fb-1"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.RegisterRequest) (*models.User, error) {
			assert.Equal(t, "Aung Aung", r.Name)
			assert.Equal(t, "aung@example.com", r.Email)
			assert.Equal(t, "fb-1", r.FirebaseUID)
			return &models.User{ID: "user-1", Credits: 100}, nil
		})

	// Act
	err := authHandler.Register(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "User registered successfully", response["message"])

	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "user-1", data["user_id"])
	assert.Equal(t, float64(100), data["credits"])
}

func TestRegister_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		mockSetup  func(uc *mocks.MockCreditsUC)
		wantStatus int
		wantError  string
	}{
		{
			name:       "Malformed JSON",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request payload",
		},
		{
			name:       "Missing firebase uid",
			body:       `{"name":"A","email":"a@example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Name and firebase_uid are required",
		},
		{
			name:       "Invalid email",
			body:       `{"name":"A","email":"not-an-email","firebase_uid":"fb-1"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "A valid email is required",
		},
		{
			name: "Duplicate registration",
			body: `{"name":"A","email":"a@example.com","firebase_uid":"fb-1"}`,
			mockSetup: func(uc *mocks.MockCreditsUC) {
				uc.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(nil, models.ErrDuplicateRegistration)
			},
			wantStatus: http.StatusConflict,
			wantError:  "Email already registered",
		},
		{
			name: "Unexpected failure",
			body: `{"name":"A","email":"a@example.com","firebase_uid":"fb-1"}`,
			mockSetup: func(uc *mocks.MockCreditsUC) {
				uc.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Registration failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockCreditsUC(ctrl)
			if tc.mockSetup != nil {
				tc.mockSetup(mockUC)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := NewAuthHandler(mockUC).Register(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.wantStatus, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tc.wantError, response["error"])
		})
	}
}
