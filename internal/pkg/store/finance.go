package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/constants"
)

var financeColumns = []string{"id", "tanggal", "jenis", "kategori", "keterangan", "jumlah", "rw", "created_by", "created_at"}

func (s *store) ListFinance(ctx context.Context, region string) ([]*domain.FinanceEntry, error) {
	query := builder().Select(financeColumns...).
		From(tableFinance).
		Where(sq.Eq{"rw": region}).
		OrderBy("tanggal DESC", "created_at DESC")

	var selected []*domain.FinanceEntry
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) CreateFinance(ctx context.Context, entry *domain.FinanceEntry) (*domain.FinanceEntry, error) {
	query := builder().Insert(tableFinance).
		Columns(financeColumns[1:8]...).
		Values(entry.Date, string(entry.Kind), entry.Category, entry.Description, entry.Amount, entry.Region, entry.CreatedBy).
		Suffix(returning(financeColumns))

	var created domain.FinanceEntry
	if err := s.pool.Getx(ctx, &created, query); err != nil {
		return nil, wrapErr(err)
	}

	return &created, nil
}

func (s *store) DeleteFinance(ctx context.Context, id string, region string) error {
	query := builder().Delete(tableFinance).
		Where(sq.Eq{"id": id, "rw": region})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}
