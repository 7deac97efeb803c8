package ports

import "context"

// EventBus is the publish-only collaborator that broadcasts domain events to
// downstream consumers. Delivery is at-least-once; consumers are expected to
// deduplicate. This core never consumes from the bus.
type EventBus interface {
	// Publish emits one domain event. The event source is bound to the bus
	// at construction; detailType names the event kind and detail is the
	// JSON-serializable payload.
	Publish(ctx context.Context, detailType string, detail any) error
}
