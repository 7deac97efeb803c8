// Package redisconfig reads externally managed configuration out of Redis.
// The menu lives under a single key as a JSON document; this core only ever
// reads it.
package redisconfig

import (
	"context"
	"encoding/json"
	"errors"

	"ordermanager/internal/core/domain/model/menu"
	"ordermanager/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultMenuKey is the key the menu document is stored under.
const DefaultMenuKey = "menu"

// MenuSource implements ports.MenuSource over a Redis key.
type MenuSource struct {
	client *redis.Client
	key    string
}

// NewMenuSource creates a menu source reading the given key.
func NewMenuSource(client *redis.Client, key string) *MenuSource {
	if key == "" {
		key = DefaultMenuKey
	}
	return &MenuSource{client: client, key: key}
}

// GetMenu fetches and decodes the current menu snapshot. A missing key means
// no menu was provisioned, reported as not-found; an unreachable Redis or an
// undecodable document means the collaborator cannot serve.
func (s *MenuSource) GetMenu(ctx context.Context) (menu.Snapshot, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return menu.Snapshot{}, errs.NewObjectNotFoundError("menu", s.key)
		}
		return menu.Snapshot{}, errs.NewCollaboratorUnavailableError("menu source", err)
	}

	var snapshot menu.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return menu.Snapshot{}, errs.NewCollaboratorUnavailableError("menu source", err)
	}

	return snapshot, nil
}
