package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/lotaya/internal/pkg/middleware"
	"github.com/piresc/lotaya/internal/pkg/models"
	"github.com/piresc/lotaya/internal/utils"
	"github.com/piresc/lotaya/services/credits/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthedContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, "fb-1")
	return c, rec
}

func TestGetProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	c, rec := newAuthedContext(http.MethodGet, "/api/user/profile")

	mockUC.EXPECT().GetProfile(gomock.Any(), "fb-1").Return(&models.User{
		ID:          "user-1",
		FirebaseUID: "fb-1",
		Name:        "Aung Aung",
		Email:       "aung@example.com",
		Credits:     100,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}, nil)

	err := NewUserHandler(mockUC).GetProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var user map[string]interface{}
	require.NoError(t, utils.ParseJSONResponse(rec.Body.Bytes(), &user))
	assert.Equal(t, "user-1", user["user_id"])
	assert.Equal(t, float64(100), user["credits"])
	assert.Equal(t, true, user["is_active"])
	_, exposed := user["firebase_uid"]
	assert.False(t, exposed)
}

func TestGetProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	c, rec := newAuthedContext(http.MethodGet, "/api/user/profile")

	mockUC.EXPECT().GetProfile(gomock.Any(), "fb-1").Return(nil, models.ErrUserNotFound)

	err := NewUserHandler(mockUC).GetProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTransactions_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	c, rec := newAuthedContext(http.MethodGet, "/api/user/transactions?limit=5&offset=10")

	mockUC.EXPECT().ResolveUser(gomock.Any(), "fb-1").Return(&models.User{ID: "user-1", IsActive: true}, nil)
	mockUC.EXPECT().ListTransactions(gomock.Any(), "user-1", 5, 10).Return(&models.TransactionPage{
		Transactions: []*models.Transaction{
			{ID: "txn-2", UserID: "user-1", Type: models.TransactionDebit, Amount: 30, Status: "completed"},
		},
		Limit:  5,
		Offset: 10,
	}, nil)

	err := NewUserHandler(mockUC).GetTransactions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var page models.TransactionPage
	require.NoError(t, utils.ParseJSONResponse(rec.Body.Bytes(), &page))
	require.Len(t, page.Transactions, 1)
	assert.Equal(t, "txn-2", page.Transactions[0].ID)
	assert.Equal(t, 5, page.Limit)
}

func TestGetTransactions_DefaultsPassZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCreditsUC(ctrl)
	c, rec := newAuthedContext(http.MethodGet, "/api/user/transactions")

	mockUC.EXPECT().ResolveUser(gomock.Any(), "fb-1").Return(&models.User{ID: "user-1", IsActive: true}, nil)
	mockUC.EXPECT().ListTransactions(gomock.Any(), "user-1", 0, 0).Return(&models.TransactionPage{Transactions: []*models.Transaction{}, Limit: 20}, nil)

	err := NewUserHandler(mockUC).GetTransactions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTransactions_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		mockSetup  func(uc *mocks.MockCreditsUC)
		wantStatus int
	}{
		{
			name:       "Non-numeric limit",
			target:     "/api/user/transactions?limit=abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "Unknown user",
			target: "/api/user/transactions",
			mockSetup: func(uc *mocks.MockCreditsUC) {
				uc.EXPECT().ResolveUser(gomock.Any(), "fb-1").Return(nil, models.ErrUserNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "Repository failure",
			target: "/api/user/transactions",
			mockSetup: func(uc *mocks.MockCreditsUC) {
				uc.EXPECT().ResolveUser(gomock.Any(), "fb-1").Return(&models.User{ID: "user-1", IsActive: true}, nil)
				uc.EXPECT().ListTransactions(gomock.Any(), "user-1", 0, 0).Return(nil, errors.New("database error"))
			},
			wantStatus: http.StatusInternalServerError,
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
			c, rec := newAuthedContext(http.MethodGet, tc.target)

			err := NewUserHandler(mockUC).GetTransactions(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.wantStatus, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, false, response["success"])
		})
	}
}
