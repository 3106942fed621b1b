package repositoryImp

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"kaio/entities"
	"kaio/pkg/planstore/repository"
)

type diskvSnapshotRepo struct {
	d    *diskv.Diskv
	name string
}

// NewDiskv stores the snapshot blob as one file under basePath.
func NewDiskv(basePath, name string) repository.SnapshotRepository {
	return &diskvSnapshotRepo{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		name: name,
	}
}

func (r *diskvSnapshotRepo) Load() (*entities.PlanSnapshot, error) {
	if !r.d.Has(r.name) {
		return nil, nil
	}
	data, err := r.d.Read(r.name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap entities.PlanSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

func (r *diskvSnapshotRepo) Save(snap *entities.PlanSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return r.d.Write(r.name, data)
}
