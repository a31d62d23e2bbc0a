package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/logger"
	"github.com/ougirez/rtrw/internal/pkg/store"
	"github.com/ougirez/rtrw/internal/pkg/store/localstore"
)

// Remote is the store records are moved into.
type Remote interface {
	store.BusinessStore
	Probe(ctx context.Context) error
}

type Result struct {
	Transferred int `json:"transferred"`
}

// Records is the local UMKM collection a migration drains.
type Records = localstore.Collection[domain.Business, *domain.Business]

type Service struct {
	records *Records
	remote  Remote
}

// NewMigrationService builds a migrator draining records into remote.
// remote may be nil when no database is configured.
func NewMigrationService(records *Records, remote Remote) *Service {
	return &Service{records: records, remote: remote}
}

// Pending returns how many UMKM records wait in the local cache.
func (s *Service) Pending(ctx context.Context) (int, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("records.List: %w", err)
	}
	return len(records), nil
}

// Available reports whether the remote store answers its probe.
func (s *Service) Available(ctx context.Context) bool {
	if s.remote == nil {
		return false
	}
	return s.remote.Probe(ctx) == nil
}

// Migrate copies every cached record into the remote store, one at a time
// and in cache order. The first failed create aborts the run and leaves the
// cache untouched; records created before it stay in the remote store.
// The cache key is removed only after every record was created. Writers to
// the local collection wait until the run is over.
func (s *Service) Migrate(ctx context.Context, identity domain.Identity) (*Result, error) {
	if s.remote == nil {
		return nil, constants.ErrStoreUnavailable
	}
	if err := s.remote.Probe(ctx); err != nil {
		logger.Errorf(ctx, "remote store probe failed: %v", err)
		return nil, fmt.Errorf("%w: probe failed", constants.ErrStoreUnavailable)
	}

	var transferred int
	err := s.records.Drain(ctx, func(records []domain.Business) error {
		for i := range records {
			record := prepare(records[i], identity)
			if _, err := s.remote.CreateBusiness(ctx, &record); err != nil {
				logger.Errorf(ctx, "migrate record %d of %d (%s): %v", i+1, len(records), record.Name, err)
				return fmt.Errorf("%w: record %d (%s): %w", constants.ErrMigrationFailed, i, record.Name, err)
			}
		}
		transferred = len(records)
		return nil
	})
	if err != nil {
		if errors.Is(err, constants.ErrMigrationFailed) {
			return nil, err
		}
		logger.Errorf(ctx, "drain local cache: %v", err)
		return nil, fmt.Errorf("records.Drain: %w", err)
	}

	if transferred > 0 {
		logger.Infof(ctx, "migrated %d UMKM records to the remote store", transferred)
	}

	return &Result{Transferred: transferred}, nil
}

// prepare drops the local id so the remote store assigns its own, and
// attributes records without an owner to the migrating identity.
func prepare(record domain.Business, identity domain.Identity) domain.Business {
	record.ID = ""
	if record.OwnerID == nil || *record.OwnerID == "" {
		owner := identity.ID
		record.OwnerID = &owner
	}
	if record.Region == "" {
		record.Region = identity.Region
	}
	return record
}
