package dashboard

import (
	"context"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/domain/dto"
	"github.com/ougirez/rtrw/internal/service/business"
	"github.com/ougirez/rtrw/internal/service/finance"
	"github.com/ougirez/rtrw/internal/service/letter"
	"github.com/ougirez/rtrw/internal/service/report"
	"github.com/ougirez/rtrw/internal/service/resident"
	"golang.org/x/sync/errgroup"
)

const recentCount = 5

type Summary struct {
	Statistics *domain.Statistics     `json:"statistics"`
	Recent     []*domain.Business     `json:"recent_umkm"`
	Finance    *domain.FinanceSummary `json:"finance"`
	Residents  int                    `json:"residents"`
	Letters    int                    `json:"letters"`
	Offline    bool                   `json:"offline"`
}

// Prober reports whether the remote record store is reachable.
type Prober interface {
	Probe(ctx context.Context) error
}

type Service struct {
	reports    *report.Service
	businesses *business.Service
	finance    *finance.Service
	residents  *resident.Service
	letters    *letter.Service
	remote     Prober
}

// NewDashboardService wires the dashboard. remote is nil while the
// application runs on the local cache only.
func NewDashboardService(
	reports *report.Service,
	businesses *business.Service,
	finance *finance.Service,
	residents *resident.Service,
	letters *letter.Service,
	remote Prober,
) *Service {
	return &Service{
		reports:    reports,
		businesses: businesses,
		finance:    finance,
		residents:  residents,
		letters:    letters,
		remote:     remote,
	}
}

func (s *Service) Summary(ctx context.Context, identity domain.Identity) (*Summary, error) {
	res := &Summary{}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		res.Statistics, err = s.reports.Statistics(egCtx, identity)
		return err
	})
	eg.Go(func() (err error) {
		res.Recent, err = s.businesses.Recent(egCtx, identity, recentCount)
		return err
	})
	eg.Go(func() (err error) {
		res.Finance, err = s.finance.Summary(egCtx, identity)
		return err
	})
	eg.Go(func() (err error) {
		res.Residents, err = s.residents.Count(egCtx, identity)
		return err
	})
	eg.Go(func() error {
		letters, err := s.letters.List(egCtx, identity, dto.ListQuery{})
		res.Letters = len(letters)
		return err
	})
	eg.Go(func() error {
		res.Offline = s.remote == nil || s.remote.Probe(egCtx) != nil
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}
