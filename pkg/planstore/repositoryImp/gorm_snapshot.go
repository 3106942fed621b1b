package repositoryImp

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kaio/entities"
	"kaio/pkg/planstore/repository"
)

type gormSnapshotRepo struct {
	db   *gorm.DB
	name string
}

// NewGorm stores the snapshot blob as a single row keyed by name.
func NewGorm(db *gorm.DB, name string) repository.SnapshotRepository {
	return &gormSnapshotRepo{db: db, name: name}
}

func (r *gormSnapshotRepo) Load() (*entities.PlanSnapshot, error) {
	var rec entities.SnapshotRecord
	if err := r.db.Where("name = ?", r.name).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var snap entities.PlanSnapshot
	if err := json.Unmarshal(rec.Data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

func (r *gormSnapshotRepo) Save(snap *entities.PlanSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	rec := entities.SnapshotRecord{Name: r.name, Data: data}
	return r.db.Save(&rec).Error
}
