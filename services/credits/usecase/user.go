package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/lotaya/internal/pkg/logger"
	"github.com/piresc/lotaya/internal/pkg/models"
)

const welcomeBonusDescription = "Welcome bonus credits"

// RegisterUser creates the user and grants the welcome bonus atomically
func (uc *CreditsUC) RegisterUser(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	user := &models.User{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		FirebaseUID: strings.TrimSpace(req.FirebaseUID),
	}

	bonus := &models.LedgerEntry{
		Type:        models.TransactionCredit,
		Amount:      welcomeBonus,
		Service:     models.ServiceRegistration,
		Description: welcomeBonusDescription,
	}

	result, err := uc.creditsRepo.CreateUserWithBonus(ctx, user, bonus)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logger.InfoCtx(ctx, "User registered",
		logger.String("user_id", user.ID),
		logger.Int("credits", user.Credits))

	uc.mirror(ctx, user)
	if result != nil {
		uc.publish(ctx, result)
	}

	return user, nil
}

// GetProfile returns the active user linked to the external identity.
// Deactivated users are reported as not found.
func (uc *CreditsUC) GetProfile(ctx context.Context, firebaseUID string) (*models.User, error) {
	user, err := uc.creditsRepo.GetUserByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if !user.IsActive {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

// ResolveUser returns the active user behind an authenticated request
func (uc *CreditsUC) ResolveUser(ctx context.Context, firebaseUID string) (*models.User, error) {
	return uc.GetProfile(ctx, firebaseUID)
}

// mirror copies the user state into the profile mirror, logging failures
func (uc *CreditsUC) mirror(ctx context.Context, user *models.User) {
	err := uc.creditsGW.MirrorUser(ctx, user.FirebaseUID, &models.UserMirror{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Credits:   user.Credits,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to mirror user profile",
			logger.String("user_id", user.ID),
			logger.ErrorField(err))
	}
}
