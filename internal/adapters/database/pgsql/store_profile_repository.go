package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/adreenastore/pos_backend/internal/apperrors"
	"github.com/adreenastore/pos_backend/internal/core/ports"
	"github.com/adreenastore/pos_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStoreProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPgxStoreProfileRepository creates a new repository for store profiles.
func NewPgxStoreProfileRepository(pool *pgxpool.Pool) ports.StoreProfileRepository {
	return &PgxStoreProfileRepository{pool: pool}
}

var _ ports.StoreProfileRepository = (*PgxStoreProfileRepository)(nil)

// FindProfileByID retrieves a store profile by its ID.
func (r *PgxStoreProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*models.StoreProfile, error) {
	query := `
		SELECT profile_id, store_name, store_address, store_phone, store_whatsapp, store_footer, store_logo, created_at, last_updated_at
		FROM store_profiles
		WHERE profile_id = $1;
	`
	var profile models.StoreProfile
	err := r.pool.QueryRow(ctx, query, profileID).Scan(
		&profile.ProfileID,
		&profile.StoreName,
		&profile.StoreAddress,
		&profile.StorePhone,
		&profile.StoreWhatsapp,
		&profile.StoreFooter,
		&profile.StoreLogo,
		&profile.CreatedAt,
		&profile.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find store profile by ID %s: %w", profileID, err)
	}
	return &profile, nil
}

// ListProfiles retrieves all store profiles, oldest first so the first seeded
// store stays the default.
func (r *PgxStoreProfileRepository) ListProfiles(ctx context.Context) ([]models.StoreProfile, error) {
	query := `
		SELECT profile_id, store_name, store_address, store_phone, store_whatsapp, store_footer, store_logo, created_at, last_updated_at
		FROM store_profiles
		ORDER BY created_at, profile_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query store profiles: %w", err)
	}
	defer rows.Close()

	profiles := []models.StoreProfile{}
	for rows.Next() {
		var profile models.StoreProfile
		err := rows.Scan(
			&profile.ProfileID,
			&profile.StoreName,
			&profile.StoreAddress,
			&profile.StorePhone,
			&profile.StoreWhatsapp,
			&profile.StoreFooter,
			&profile.StoreLogo,
			&profile.CreatedAt,
			&profile.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating store profile rows: %w", err)
	}

	return profiles, nil
}

// SaveProfile inserts or overwrites a store profile record.
func (r *PgxStoreProfileRepository) SaveProfile(ctx context.Context, profile models.StoreProfile) error {
	query := `
		INSERT INTO store_profiles (profile_id, store_name, store_address, store_phone, store_whatsapp, store_footer, store_logo, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (profile_id) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			store_address = EXCLUDED.store_address,
			store_phone = EXCLUDED.store_phone,
			store_whatsapp = EXCLUDED.store_whatsapp,
			store_footer = EXCLUDED.store_footer,
			store_logo = EXCLUDED.store_logo,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.pool.Exec(ctx, query,
		profile.ProfileID,
		profile.StoreName,
		profile.StoreAddress,
		profile.StorePhone,
		profile.StoreWhatsapp,
		profile.StoreFooter,
		profile.StoreLogo,
		profile.CreatedAt,
		profile.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save store profile %s: %w", profile.ProfileID, err)
	}
	return nil
}
