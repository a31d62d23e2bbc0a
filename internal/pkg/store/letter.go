package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/rtrw/internal/domain"
)

var letterColumns = []string{"id", "nomor", "jenis", "nama", "nik", "alamat", "keperluan", "keterangan", "tanggal", "status", "rw"}

type countRow struct {
	Count int `db:"count"`
}

func (s *store) ListLetters(ctx context.Context, region string) ([]*domain.Letter, error) {
	query := builder().Select(letterColumns...).
		From(tableLetters).
		Where(sq.Eq{"rw": region}).
		OrderBy("tanggal DESC")

	var selected []*domain.Letter
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetLetter(ctx context.Context, id string) (*domain.Letter, error) {
	query := builder().Select(letterColumns...).
		From(tableLetters).
		Where(sq.Eq{"id": id})

	var selected domain.Letter
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) CountLetters(ctx context.Context, region, letterType string, from, to time.Time) (int, error) {
	query := builder().Select("count(*) AS count").
		From(tableLetters).
		Where(sq.Eq{"rw": region, "jenis": letterType}).
		Where(sq.GtOrEq{"tanggal": from}).
		Where(sq.Lt{"tanggal": to})

	var row countRow
	if err := s.pool.Getx(ctx, &row, query); err != nil {
		return 0, wrapErr(err)
	}

	return row.Count, nil
}

func (s *store) CreateLetter(ctx context.Context, letter *domain.Letter) (*domain.Letter, error) {
	query := builder().Insert(tableLetters).
		Columns(letterColumns[1:]...).
		Values(
			letter.Number, letter.Type, letter.RecipientName, letter.RecipientNIK, letter.Address,
			letter.Purpose, letter.Notes, letter.IssuedAt, letter.Status, letter.Region,
		).
		Suffix(returning(letterColumns))

	var created domain.Letter
	if err := s.pool.Getx(ctx, &created, query); err != nil {
		return nil, wrapErr(err)
	}

	return &created, nil
}
