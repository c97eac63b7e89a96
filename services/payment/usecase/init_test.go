package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/lotaya/internal/pkg/models"
	creditsmocks "github.com/piresc/lotaya/services/credits/mocks"
	"github.com/piresc/lotaya/services/payment/mocks"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type paymentUCDeps struct {
	repo      *mocks.MockPaymentRepo
	gw        *mocks.MockPaymentGW
	creditsUC *creditsmocks.MockCreditsUC
}

func newTestConfig() *models.Config {
	return &models.Config{
		PGW: models.PGWConfig{
			MerchantUserID: "merchant-1",
			Currency:       "MMK",
			ExpirySeconds:  1800,
			MaxCredits:     10000,
		},
	}
}

func setupPaymentUC(t *testing.T) (*PaymentUC, *paymentUCDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := &paymentUCDeps{
		repo:      mocks.NewMockPaymentRepo(ctrl),
		gw:        mocks.NewMockPaymentGW(ctrl),
		creditsUC: creditsmocks.NewMockCreditsUC(ctrl),
	}
	uc := NewPaymentUC(deps.repo, deps.gw, deps.creditsUC, newTestConfig())
	uc.now = func() time.Time { return fixedNow }
	uc.suffix = func() string { return "ABCDEF12" }
	return uc, deps
}

func testUser() *models.User {
	return &models.User{ID: "user-1", FirebaseUID: "fb-1", Name: "Aung Aung", Email: "aung@example.com", IsActive: true}
}
