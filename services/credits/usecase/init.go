package usecase

import (
	"time"

	"github.com/piresc/lotaya/internal/pkg/models"
	"github.com/piresc/lotaya/services/credits"
)

const (
	// welcomeBonus is granted once, on registration
	welcomeBonus     = 100
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type CreditsUC struct {
	creditsRepo credits.CreditsRepo
	creditsGW   credits.CreditsGW
	cfg         *models.Config
	now         func() time.Time
}

// NewCreditsUC creates a new credits usecase instance
func NewCreditsUC(
	creditsRepo credits.CreditsRepo,
	creditsGW credits.CreditsGW,
	cfg *models.Config,
) *CreditsUC {
	return &CreditsUC{
		creditsRepo: creditsRepo,
		creditsGW:   creditsGW,
		cfg:         cfg,
		now:         time.Now,
	}
}

// pageWindow clamps a requested page to the configured bounds
func (uc *CreditsUC) pageWindow(limit, offset int) (int, int) {
	maxLimit := uc.cfg.Credits.MaxLimit
	if maxLimit <= 0 {
		maxLimit = maxPageLimit
	}
	defLimit := uc.cfg.Credits.DefaultLimit
	if defLimit <= 0 || defLimit > maxLimit {
		defLimit = defaultPageLimit
	}

	if limit <= 0 {
		limit = defLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
