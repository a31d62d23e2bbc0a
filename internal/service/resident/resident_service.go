package resident

import (
	"context"
	"fmt"
	"strings"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/domain/dto"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/store"
)

type Service struct {
	store store.ResidentStore
}

func NewResidentService(store store.ResidentStore) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, identity domain.Identity, query dto.ListQuery) ([]*domain.Resident, error) {
	residents, err := s.store.ListResidents(ctx, identity.Region)
	if err != nil {
		return nil, fmt.Errorf("store.ListResidents: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(query.Search))
	if term == "" {
		return residents, nil
	}

	res := make([]*domain.Resident, 0, len(residents))
	for _, r := range residents {
		if strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(r.NIK, term) ||
			strings.Contains(strings.ToLower(r.Address), term) {
			res = append(res, r)
		}
	}
	return res, nil
}

func (s *Service) Count(ctx context.Context, identity domain.Identity) (int, error) {
	residents, err := s.store.ListResidents(ctx, identity.Region)
	if err != nil {
		return 0, fmt.Errorf("store.ListResidents: %w", err)
	}
	return len(residents), nil
}

func (s *Service) Get(ctx context.Context, identity domain.Identity, id string) (*domain.Resident, error) {
	r, err := s.store.GetResident(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetResident: %w", err)
	}
	if r.Region != identity.Region {
		return nil, constants.ErrDBNotFound
	}
	return r, nil
}

func (s *Service) Create(ctx context.Context, identity domain.Identity, request *dto.ResidentRequest) (*domain.Resident, error) {
	if !identity.IsAdmin() {
		return nil, constants.ErrForbidden
	}
	if !isNIK(request.NIK) || !isNIK(request.FamilyCardNumber) {
		return nil, fmt.Errorf("%w: NIK and KK must be 16 digits", constants.ErrValidation)
	}

	created, err := s.store.CreateResident(ctx, &domain.Resident{
		Name:             request.Name,
		NIK:              request.NIK,
		FamilyCardNumber: request.FamilyCardNumber,
		Address:          request.Address,
		BirthPlace:       request.BirthPlace,
		BirthDate:        request.BirthDate,
		Gender:           request.Gender,
		Occupation:       request.Occupation,
		MaritalStatus:    request.MaritalStatus,
		Religion:         request.Religion,
		Education:        request.Education,
		Region:           identity.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("store.CreateResident: %w", err)
	}
	return created, nil
}

func (s *Service) Delete(ctx context.Context, identity domain.Identity, id string) error {
	if !identity.IsAdmin() {
		return constants.ErrForbidden
	}
	if err := s.store.DeleteResident(ctx, id, identity.Region); err != nil {
		return fmt.Errorf("store.DeleteResident: %w", err)
	}
	return nil
}

func isNIK(s string) bool {
	if len(s) != 16 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
