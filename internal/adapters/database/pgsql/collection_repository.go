package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Collection keys preserve the storage names the dashboard has always used
// for its per-user collections.
const (
	goalsKey       = "userFinancialGoals"
	liabilitiesKey = "userLiabilities"
	profileKey     = "userData"
)

// schemaVersion tags every stored payload so future field additions can be
// migrated instead of breaking old rows.
const schemaVersion = 1

// envelope wraps a stored collection payload with its schema version.
type envelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	Items         json.RawMessage `json:"items"`
}

// CollectionRepository persists whole per-user collections as JSON
// documents, one row per (user, collection key). Writes always replace the
// full payload; there are no incremental updates.
type CollectionRepository struct {
	pool *pgxpool.Pool
}

// NewCollectionRepository creates the repository backing goals, liabilities
// and the profile snapshot.
func NewCollectionRepository(pool *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{pool: pool}
}

func (r *CollectionRepository) LoadGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	raw, err := r.loadPayload(ctx, userID, goalsKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []domain.Goal{}, nil
	}

	var goals []domain.Goal
	if err := json.Unmarshal(raw, &goals); err != nil {
		return nil, fmt.Errorf("%w: malformed goal payload for user %s: %v", apperrors.ErrPersistence, userID, err)
	}
	// Reconstruct icons from their stored tags, rejecting unknown tags at
	// the storage boundary.
	for i := range goals {
		if _, err := domain.ParseGoalIcon(string(goals[i].Icon)); err != nil {
			return nil, fmt.Errorf("%w: goal %s: %v", apperrors.ErrPersistence, goals[i].ID, err)
		}
	}
	return goals, nil
}

func (r *CollectionRepository) ReplaceGoals(ctx context.Context, userID string, goals []domain.Goal) error {
	return r.savePayload(ctx, userID, goalsKey, goals)
}

func (r *CollectionRepository) LoadLiabilities(ctx context.Context, userID string) ([]domain.Liability, error) {
	raw, err := r.loadPayload(ctx, userID, liabilitiesKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []domain.Liability{}, nil
	}

	var liabilities []domain.Liability
	if err := json.Unmarshal(raw, &liabilities); err != nil {
		return nil, fmt.Errorf("%w: malformed liability payload for user %s: %v", apperrors.ErrPersistence, userID, err)
	}
	for i := range liabilities {
		if _, err := domain.ParseLiabilityCategory(string(liabilities[i].Category)); err != nil {
			return nil, fmt.Errorf("%w: liability %s: %v", apperrors.ErrPersistence, liabilities[i].ID, err)
		}
	}
	return liabilities, nil
}

func (r *CollectionRepository) ReplaceLiabilities(ctx context.Context, userID string, liabilities []domain.Liability) error {
	return r.savePayload(ctx, userID, liabilitiesKey, liabilities)
}

func (r *CollectionRepository) FindProfile(ctx context.Context, userID string) (*domain.ProfileSnapshot, error) {
	raw, err := r.loadPayload(ctx, userID, profileKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: profile snapshot for user %s", apperrors.ErrNotFound, userID)
	}

	var profile domain.ProfileSnapshot
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("%w: malformed profile payload for user %s: %v", apperrors.ErrPersistence, userID, err)
	}
	return &profile, nil
}

func (r *CollectionRepository) SaveProfile(ctx context.Context, userID string, profile domain.ProfileSnapshot) error {
	return r.savePayload(ctx, userID, profileKey, profile)
}

// loadPayload returns the stored items for the key, or nil when the user
// has never written this collection.
func (r *CollectionRepository) loadPayload(ctx context.Context, userID string, key string) (json.RawMessage, error) {
	query := `
		SELECT payload
		FROM collection_documents
		WHERE user_id = $1 AND collection_key = $2;
	`
	var payload []byte
	err := r.pool.QueryRow(ctx, query, userID, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load %s for user %s: %v", apperrors.ErrPersistence, key, userID, err)
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("%w: malformed envelope for %s: %v", apperrors.ErrPersistence, key, err)
	}
	if env.SchemaVersion > schemaVersion {
		return nil, fmt.Errorf("%w: %s written by newer schema version %d", apperrors.ErrPersistence, key, env.SchemaVersion)
	}
	return env.Items, nil
}

func (r *CollectionRepository) savePayload(ctx context.Context, userID string, key string, items any) error {
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encode %s for user %s: %v", apperrors.ErrPersistence, key, userID, err)
	}
	payload, err := json.Marshal(envelope{SchemaVersion: schemaVersion, Items: encoded})
	if err != nil {
		return fmt.Errorf("%w: encode envelope for %s: %v", apperrors.ErrPersistence, key, err)
	}

	query := `
		INSERT INTO collection_documents (user_id, collection_key, payload, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, collection_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.pool.Exec(ctx, query, userID, key, payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: save %s for user %s: %v", apperrors.ErrPersistence, key, userID, err)
	}
	return nil
}
