package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/adreenastore/pos_backend/internal/apperrors"
	"github.com/adreenastore/pos_backend/internal/core/ports"
	"github.com/adreenastore/pos_backend/internal/dto"
	"github.com/adreenastore/pos_backend/internal/middleware"
	"github.com/adreenastore/pos_backend/internal/models"
)

// fallbackProfile is returned when no profile has been seeded at all, so
// receipts always carry a non-empty store name.
var fallbackProfile = models.StoreProfile{
	ProfileID: "adreena-store",
	StoreName: "Adreena Store",
}

// storeProfileService owns the store profiles and the per-session selection of
// the active one. The selection is session state, not a persisted field: two
// clients may point at different stores at the same time.
type storeProfileService struct {
	profileRepo ports.StoreProfileRepository

	mu            sync.RWMutex
	activePerSess map[string]string
}

// NewStoreProfileService creates a new StoreProfileService.
func NewStoreProfileService(profileRepo ports.StoreProfileRepository) ports.StoreProfileService {
	return &storeProfileService{
		profileRepo:   profileRepo,
		activePerSess: make(map[string]string),
	}
}

var _ ports.StoreProfileService = (*storeProfileService)(nil)

// activeProfileID returns the session's selection, or empty when the session
// has not switched yet.
func (s *storeProfileService) activeProfileID(sessionID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activePerSess[sessionID]
}

// GetActiveProfile returns the profile selected by the session. Sessions that
// never switched get the first available profile; an empty profile table gets
// the built-in default.
func (s *storeProfileService) GetActiveProfile(ctx context.Context, sessionID string) (*models.StoreProfile, error) {
	if activeID := s.activeProfileID(sessionID); activeID != "" {
		profile, err := s.profileRepo.FindProfileByID(ctx, activeID)
		if err == nil {
			return profile, nil
		}
		// The selected profile disappeared from the store; fall through to the
		// defaults rather than failing the session.
	}

	profiles, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list store profiles: %w", err)
	}
	if len(profiles) == 0 {
		p := fallbackProfile
		return &p, nil
	}
	return &profiles[0], nil
}

// ListAvailableProfiles returns all known profiles.
func (s *storeProfileService) ListAvailableProfiles(ctx context.Context) ([]models.StoreProfile, error) {
	profiles, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list store profiles: %w", err)
	}
	return profiles, nil
}

// SwitchActiveProfile points the session at another profile. An unknown id
// leaves the selection unchanged and returns no error; callers confirm by
// re-reading GetActiveProfile.
func (s *storeProfileService) SwitchActiveProfile(ctx context.Context, sessionID string, profileID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.profileRepo.FindProfileByID(ctx, profileID); err != nil {
		logger.Warn("Ignoring switch to unknown store profile",
			slog.String("profile_id", profileID),
		)
		return nil
	}

	s.mu.Lock()
	s.activePerSess[sessionID] = profileID
	s.mu.Unlock()

	logger.Info("Active store profile switched", slog.String("profile_id", profileID))
	return nil
}

// UpdateActiveProfile merges the supplied fields into the session's active
// profile and persists it. Fields omitted from the request keep their current
// value; other profiles are not affected.
func (s *storeProfileService) UpdateActiveProfile(ctx context.Context, sessionID string, req dto.UpdateStoreProfileRequest) (*models.StoreProfile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile, err := s.GetActiveProfile(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if req.StoreName != nil {
		if *req.StoreName == "" {
			return nil, fmt.Errorf("%w: store name must not be empty", apperrors.ErrValidation)
		}
		profile.StoreName = *req.StoreName
	}
	if req.StoreAddress != nil {
		profile.StoreAddress = *req.StoreAddress
	}
	if req.StorePhone != nil {
		profile.StorePhone = *req.StorePhone
	}
	if req.StoreWhatsapp != nil {
		profile.StoreWhatsapp = *req.StoreWhatsapp
	}
	if req.StoreFooter != nil {
		profile.StoreFooter = *req.StoreFooter
	}
	if req.StoreLogo != nil {
		profile.StoreLogo = *req.StoreLogo
	}
	profile.LastUpdatedAt = time.Now()

	if err := s.profileRepo.SaveProfile(ctx, *profile); err != nil {
		return nil, fmt.Errorf("failed to save store profile %s: %w", profile.ProfileID, err)
	}

	logger.Info("Store profile updated", slog.String("profile_id", profile.ProfileID))
	return profile, nil
}
