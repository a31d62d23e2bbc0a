package report

import (
	"context"
	"fmt"
	"time"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/store"
)

type Service struct {
	store store.BusinessStore
	now   func() time.Time
}

func NewReportService(store store.BusinessStore) *Service {
	return &Service{store: store, now: time.Now}
}

// Statistics aggregates the UMKM records visible to identity: the whole RW
// for admins, own records for everyone else.
func (s *Service) Statistics(ctx context.Context, identity domain.Identity) (*domain.Statistics, error) {
	records, err := s.store.ListBusinesses(ctx, store.FilterFor(identity))
	if err != nil {
		return nil, fmt.Errorf("store.ListBusinesses: %w", err)
	}

	return Compute(records), nil
}

func (s *Service) Export(ctx context.Context, identity domain.Identity) (*Document, error) {
	stats, err := s.Statistics(ctx, identity)
	if err != nil {
		return nil, err
	}

	return Render(stats, identity, s.now()), nil
}
