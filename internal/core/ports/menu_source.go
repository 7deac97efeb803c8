package ports

import (
	"context"

	"ordermanager/internal/core/domain/model/menu"
)

// MenuSource is the read-only configuration collaborator that supplies the
// current menu snapshot. Consumed only by the put-order flow; this core never
// writes menu content.
type MenuSource interface {
	// GetMenu fetches the current menu snapshot. A menu that was never
	// provisioned is an ObjectNotFoundError; an unreachable or undecodable
	// source is a CollaboratorUnavailableError.
	GetMenu(ctx context.Context) (menu.Snapshot, error)
}
