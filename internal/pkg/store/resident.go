package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/constants"
)

var residentColumns = []string{
	"id", "nama", "nik", "no_kk", "alamat", "tempat_lahir", "tanggal_lahir", "jenis_kelamin",
	"pekerjaan", "status", "agama", "pendidikan", "rw", "created_at",
}

func (s *store) ListResidents(ctx context.Context, region string) ([]*domain.Resident, error) {
	query := builder().Select(residentColumns...).
		From(tableResidents).
		Where(sq.Eq{"rw": region}).
		OrderBy("nama")

	var selected []*domain.Resident
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetResident(ctx context.Context, id string) (*domain.Resident, error) {
	query := builder().Select(residentColumns...).
		From(tableResidents).
		Where(sq.Eq{"id": id})

	var selected domain.Resident
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) CreateResident(ctx context.Context, r *domain.Resident) (*domain.Resident, error) {
	query := builder().Insert(tableResidents).
		Columns(residentColumns[1:13]...).
		Values(
			r.Name, r.NIK, r.FamilyCardNumber, r.Address, r.BirthPlace, r.BirthDate,
			r.Gender, r.Occupation, r.MaritalStatus, r.Religion, r.Education, r.Region,
		).
		Suffix(returning(residentColumns))

	var created domain.Resident
	if err := s.pool.Getx(ctx, &created, query); err != nil {
		return nil, wrapErr(err)
	}

	return &created, nil
}

func (s *store) DeleteResident(ctx context.Context, id string, region string) error {
	tag, err := s.pool.Execx(ctx, builder().Delete(tableResidents).Where(sq.Eq{"id": id, "rw": region}))
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}
