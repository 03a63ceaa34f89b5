package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/indocart/pos-payments/internal/core/domain"
)

const rolePrefix = "role:"

// RoleStore is the external key-value store mapping subject_id → role.
// Key format: role:<subject_id>
type RoleStore struct {
	client *redis.Client
}

// NewRoleStore creates a RoleStore wrapping the given Redis client.
func NewRoleStore(client *redis.Client) *RoleStore {
	return &RoleStore{client: client}
}

// RoleOf returns the stored role for subjectID, case-folded. A missing record
// is an authorization failure, not an infrastructure error.
func (s *RoleStore) RoleOf(ctx context.Context, subjectID string) (string, error) {
	role, err := s.client.Get(ctx, rolePrefix+subjectID).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: no role assigned", domain.ErrForbidden)
	}
	if err != nil {
		return "", fmt.Errorf("role lookup: %w", err)
	}
	return strings.ToLower(role), nil
}

// SetRole stores the role for subjectID. Roles have no TTL; they live until
// reassigned.
func (s *RoleStore) SetRole(ctx context.Context, subjectID, role string) error {
	if err := s.client.Set(ctx, rolePrefix+subjectID, strings.ToLower(role), 0).Err(); err != nil {
		return fmt.Errorf("role set: %w", err)
	}
	return nil
}
