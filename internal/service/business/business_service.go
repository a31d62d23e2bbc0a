package business

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/domain/dto"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/logger"
	"github.com/ougirez/rtrw/internal/pkg/store"
)

type Service struct {
	store store.BusinessStore
}

func NewBusinessService(store store.BusinessStore) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, identity domain.Identity, query dto.BusinessQuery) ([]*domain.Business, error) {
	records, err := s.store.ListBusinesses(ctx, store.FilterFor(identity))
	if err != nil {
		return nil, fmt.Errorf("store.ListBusinesses: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(query.Search))
	res := make([]*domain.Business, 0, len(records))
	for _, b := range records {
		if query.Type != "" && b.BusinessType != query.Type {
			continue
		}
		if query.Status != "" && string(b.Status) != query.Status {
			continue
		}
		if term != "" && !matches(term, b.Name, b.OwnerName, b.BusinessType, b.Phone) {
			continue
		}
		res = append(res, b)
	}

	return res, nil
}

// Recent returns up to n visible records, newest first.
func (s *Service) Recent(ctx context.Context, identity domain.Identity, n int) ([]*domain.Business, error) {
	records, err := s.store.ListBusinesses(ctx, store.FilterFor(identity))
	if err != nil {
		return nil, fmt.Errorf("store.ListBusinesses: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if len(records) > n {
		records = records[:n]
	}
	return records, nil
}

func (s *Service) Get(ctx context.Context, identity domain.Identity, id string) (*domain.Business, error) {
	b, err := s.store.GetBusiness(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetBusiness: %w", err)
	}
	if !canAccess(identity, b) {
		return nil, constants.ErrDBNotFound
	}
	return b, nil
}

func (s *Service) Create(ctx context.Context, identity domain.Identity, request *dto.BusinessRequest) (*domain.Business, error) {
	if !request.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", constants.ErrValidation, request.Status)
	}
	if request.Budget.IsNegative() || request.InitialCapital.IsNegative() {
		return nil, fmt.Errorf("%w: amounts must not be negative", constants.ErrValidation)
	}

	owner := identity.ID
	b := &domain.Business{OwnerID: &owner, Region: identity.Region}
	request.Apply(b)

	created, err := s.store.CreateBusiness(ctx, b)
	if err != nil {
		logger.Errorf(ctx, "create umkm %q: %v", b.Name, err)
		return nil, fmt.Errorf("store.CreateBusiness: %w", err)
	}
	return created, nil
}

// Update may be done by the record owner or an admin of the record's RW.
func (s *Service) Update(ctx context.Context, identity domain.Identity, id string, request *dto.BusinessRequest) (*domain.Business, error) {
	if !request.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", constants.ErrValidation, request.Status)
	}

	b, err := s.store.GetBusiness(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetBusiness: %w", err)
	}
	if !canAccess(identity, b) {
		return nil, constants.ErrForbidden
	}

	request.Apply(b)

	updated, err := s.store.UpdateBusiness(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("store.UpdateBusiness: %w", err)
	}
	return updated, nil
}

// Delete removes a record. Admins delete on behalf of the record owner,
// everyone else only with their own id.
func (s *Service) Delete(ctx context.Context, identity domain.Identity, id string) error {
	ownerID := identity.ID
	if identity.IsAdmin() {
		b, err := s.store.GetBusiness(ctx, id)
		if err != nil {
			return fmt.Errorf("store.GetBusiness: %w", err)
		}
		if b.Region != identity.Region {
			return constants.ErrForbidden
		}
		ownerID = b.Owner()
	}

	if err := s.store.DeleteBusiness(ctx, id, ownerID); err != nil {
		return fmt.Errorf("store.DeleteBusiness: %w", err)
	}
	return nil
}

func canAccess(identity domain.Identity, b *domain.Business) bool {
	if identity.IsAdmin() {
		return b.Region == identity.Region
	}
	return b.Owner() == identity.ID
}

func matches(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
