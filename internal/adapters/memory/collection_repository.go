// Package memory provides an in-memory implementation of the collection
// repositories, used in tests and when the service runs without a database.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
)

const (
	goalsKey       = "userFinancialGoals"
	liabilitiesKey = "userLiabilities"
	profileKey     = "userData"
)

// CollectionRepository stores serialized collections keyed by user and
// collection name, mirroring the durable adapter's whole-payload writes.
type CollectionRepository struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

func NewCollectionRepository() *CollectionRepository {
	return &CollectionRepository{data: make(map[string]map[string][]byte)}
}

func (r *CollectionRepository) LoadGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	raw, ok := r.get(userID, goalsKey)
	if !ok {
		return []domain.Goal{}, nil
	}
	var goals []domain.Goal
	if err := json.Unmarshal(raw, &goals); err != nil {
		return nil, fmt.Errorf("%w: malformed goal payload: %v", apperrors.ErrPersistence, err)
	}
	return goals, nil
}

func (r *CollectionRepository) ReplaceGoals(ctx context.Context, userID string, goals []domain.Goal) error {
	return r.set(userID, goalsKey, goals)
}

func (r *CollectionRepository) LoadLiabilities(ctx context.Context, userID string) ([]domain.Liability, error) {
	raw, ok := r.get(userID, liabilitiesKey)
	if !ok {
		return []domain.Liability{}, nil
	}
	var liabilities []domain.Liability
	if err := json.Unmarshal(raw, &liabilities); err != nil {
		return nil, fmt.Errorf("%w: malformed liability payload: %v", apperrors.ErrPersistence, err)
	}
	return liabilities, nil
}

func (r *CollectionRepository) ReplaceLiabilities(ctx context.Context, userID string, liabilities []domain.Liability) error {
	return r.set(userID, liabilitiesKey, liabilities)
}

func (r *CollectionRepository) FindProfile(ctx context.Context, userID string) (*domain.ProfileSnapshot, error) {
	raw, ok := r.get(userID, profileKey)
	if !ok {
		return nil, fmt.Errorf("%w: profile snapshot for user %s", apperrors.ErrNotFound, userID)
	}
	var profile domain.ProfileSnapshot
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("%w: malformed profile payload: %v", apperrors.ErrPersistence, err)
	}
	return &profile, nil
}

func (r *CollectionRepository) SaveProfile(ctx context.Context, userID string, profile domain.ProfileSnapshot) error {
	return r.set(userID, profileKey, profile)
}

func (r *CollectionRepository) get(userID string, key string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	byKey, ok := r.data[userID]
	if !ok {
		return nil, false
	}
	raw, ok := byKey[key]
	return raw, ok
}

func (r *CollectionRepository) set(userID string, key string, items any) error {
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", apperrors.ErrPersistence, key, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data[userID] == nil {
		r.data[userID] = make(map[string][]byte)
	}
	r.data[userID][key] = encoded
	return nil
}
