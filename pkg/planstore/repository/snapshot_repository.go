package repository

import "kaio/entities"

// SnapshotRepository persists the single application snapshot blob.
type SnapshotRepository interface {
	// Load returns the stored snapshot, or (nil, nil) when none exists yet.
	Load() (*entities.PlanSnapshot, error)
	Save(*entities.PlanSnapshot) error
}
