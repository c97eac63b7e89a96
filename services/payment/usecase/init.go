package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/lotaya/internal/pkg/models"
	"github.com/piresc/lotaya/services/credits"
	"github.com/piresc/lotaya/services/payment"
)

const (
	defaultPaymentMethod = "myanmar_pgw"
	defaultExpirySeconds = 1800
	defaultCurrency      = "MMK"

	// creditRate is the fixed price of one credit in MMK
	creditRate int64 = 100
)

type PaymentUC struct {
	paymentRepo payment.PaymentRepo
	paymentGW   payment.PaymentGW
	creditsUC   credits.CreditsUC
	cfg         *models.Config
	now         func() time.Time
	suffix      func() string
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	paymentRepo payment.PaymentRepo,
	paymentGW payment.PaymentGW,
	creditsUC credits.CreditsUC,
	cfg *models.Config,
) *PaymentUC {
	return &PaymentUC{
		paymentRepo: paymentRepo,
		paymentGW:   paymentGW,
		creditsUC:   creditsUC,
		cfg:         cfg,
		now:         time.Now,
		suffix:      randomSuffix,
	}
}

// randomSuffix keeps time-derived gateway ids unique within the same second
func randomSuffix() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (uc *PaymentUC) expiry() time.Duration {
	if uc.cfg.PGW.ExpirySeconds > 0 {
		return time.Duration(uc.cfg.PGW.ExpirySeconds) * time.Second
	}
	return defaultExpirySeconds * time.Second
}

func (uc *PaymentUC) currency() string {
	if uc.cfg.PGW.Currency != "" {
		return uc.cfg.PGW.Currency
	}
	return defaultCurrency
}
