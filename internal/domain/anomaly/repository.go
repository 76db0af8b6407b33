package anomaly

import (
	"context"
)

// AnomalyRepository defines data access methods for anomaly events.
type AnomalyRepository interface {
	// Upsert atomically inserts or overwrites the anomaly record keyed by
	// (entity_type, entity_id), relying on the store's unique-constraint
	// upsert rather than read-then-write. It reports whether an existing
	// record was overwritten.
	Upsert(ctx context.Context, event AnomalyEvent) (AnomalyEvent, bool, error)

	// GetByEntity retrieves the anomaly record for an entity, if any
	GetByEntity(ctx context.Context, entityType EntityType, entityID string) (AnomalyEvent, error)

	// List retrieves anomaly events filterable by status and entity type
	List(ctx context.Context, filter AnomalyFilter) ([]AnomalyEvent, int64, error)

	// UpdateStatus sets the reviewer-assigned status
	UpdateStatus(ctx context.Context, id string, status Status) (AnomalyEvent, error)
}
