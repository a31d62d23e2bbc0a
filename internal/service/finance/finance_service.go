package finance

import (
	"context"
	"fmt"
	"strings"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/domain/dto"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/logger"
	"github.com/ougirez/rtrw/internal/pkg/store"
	"github.com/shopspring/decimal"
)

// Service keeps the RW cash book. Entries are scoped to the caller's RW
// and only admins may write them.
type Service struct {
	store store.FinanceStore
}

func NewFinanceService(store store.FinanceStore) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, identity domain.Identity, query dto.ListQuery) ([]*domain.FinanceEntry, error) {
	entries, err := s.store.ListFinance(ctx, identity.Region)
	if err != nil {
		return nil, fmt.Errorf("store.ListFinance: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(query.Search))
	res := make([]*domain.FinanceEntry, 0, len(entries))
	for _, e := range entries {
		if query.Type != "" && string(e.Kind) != query.Type {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(e.Description), term) &&
			!strings.Contains(strings.ToLower(e.Category), term) {
			continue
		}
		res = append(res, e)
	}
	return res, nil
}

func (s *Service) Create(ctx context.Context, identity domain.Identity, request *dto.FinanceRequest) (*domain.FinanceEntry, error) {
	if !identity.IsAdmin() {
		return nil, constants.ErrForbidden
	}
	if !request.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", constants.ErrValidation, request.Kind)
	}
	if !request.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", constants.ErrValidation)
	}

	entry := &domain.FinanceEntry{
		Date:        request.Date,
		Kind:        request.Kind,
		Category:    request.Category,
		Description: request.Description,
		Amount:      request.Amount,
		Region:      identity.Region,
		CreatedBy:   identity.ID,
	}

	created, err := s.store.CreateFinance(ctx, entry)
	if err != nil {
		logger.Errorf(ctx, "create finance entry: %v", err)
		return nil, fmt.Errorf("store.CreateFinance: %w", err)
	}
	return created, nil
}

func (s *Service) Delete(ctx context.Context, identity domain.Identity, id string) error {
	if !identity.IsAdmin() {
		return constants.ErrForbidden
	}
	if err := s.store.DeleteFinance(ctx, id, identity.Region); err != nil {
		return fmt.Errorf("store.DeleteFinance: %w", err)
	}
	return nil
}

func (s *Service) Summary(ctx context.Context, identity domain.Identity) (*domain.FinanceSummary, error) {
	entries, err := s.store.ListFinance(ctx, identity.Region)
	if err != nil {
		return nil, fmt.Errorf("store.ListFinance: %w", err)
	}
	return Summarize(entries), nil
}

func Summarize(entries []*domain.FinanceEntry) *domain.FinanceSummary {
	summary := &domain.FinanceSummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
	}
	for _, e := range entries {
		switch e.Kind {
		case domain.FinanceIncome:
			summary.TotalIncome = summary.TotalIncome.Add(e.Amount)
		case domain.FinanceExpense:
			summary.TotalExpense = summary.TotalExpense.Add(e.Amount)
		default:
			continue
		}
		summary.Balance = summary.Balance.Add(e.Signed())
		summary.Count++
	}
	return summary
}
