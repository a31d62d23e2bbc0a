package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/logger"
)

var businessColumns = []string{
	"id", "user_id", "rw", "nama_usaha", "pemilik", "jenis_usaha", "kategori_usaha", "status",
	"rab", "modal_awal", "jumlah_karyawan", "no_hp", "alamat", "deskripsi", "created_at", "updated_at",
}

func listBusinessesQuery(filter BusinessFilter) sq.SelectBuilder {
	query := builder().Select(businessColumns...).
		From(tableBusinesses).
		OrderBy("created_at DESC")

	if filter.OwnerID != nil {
		query = query.Where(sq.Eq{"user_id": *filter.OwnerID})
	}
	if filter.Region != nil {
		query = query.Where(sq.Eq{"rw": *filter.Region})
	}
	return query
}

func (s *store) ListBusinesses(ctx context.Context, filter BusinessFilter) ([]*domain.Business, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var selected []*domain.Business
	if err := s.pool.Selectx(ctx, &selected, listBusinessesQuery(filter)); err != nil {
		logger.Errorf(ctx, "ListBusinesses: %s", err.Error())
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetBusiness(ctx context.Context, id string) (*domain.Business, error) {
	query := builder().Select(businessColumns...).
		From(tableBusinesses).
		Where(sq.Eq{"id": id})

	var selected domain.Business
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

// CreateBusiness ignores business.ID; the database assigns a new one.
func (s *store) CreateBusiness(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	query := builder().Insert(tableBusinesses).
		Columns(businessColumns[1:14]...).
		Values(
			business.OwnerID, business.Region, business.Name, business.OwnerName, business.BusinessType,
			business.Category, string(business.Status), business.Budget, business.InitialCapital,
			business.Employees, business.Phone, business.Address, business.Description,
		).
		Suffix(returning(businessColumns))

	var created domain.Business
	if err := s.pool.Getx(ctx, &created, query); err != nil {
		logger.Errorf(ctx, "CreateBusiness: %s", err.Error())
		return nil, fmt.Errorf("insert umkm %q: %w", business.Name, wrapErr(err))
	}

	return &created, nil
}

func (s *store) UpdateBusiness(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	query := builder().Update(tableBusinesses).
		SetMap(map[string]interface{}{
			"nama_usaha":      business.Name,
			"pemilik":         business.OwnerName,
			"jenis_usaha":     business.BusinessType,
			"kategori_usaha":  business.Category,
			"status":          string(business.Status),
			"rab":             business.Budget,
			"modal_awal":      business.InitialCapital,
			"jumlah_karyawan": business.Employees,
			"no_hp":           business.Phone,
			"alamat":          business.Address,
			"deskripsi":       business.Description,
			"updated_at":      time.Now(),
		}).
		Where(sq.Eq{"id": business.ID}).
		Suffix(returning(businessColumns))

	var updated domain.Business
	if err := s.pool.Getx(ctx, &updated, query); err != nil {
		return nil, wrapErr(err)
	}

	return &updated, nil
}

// DeleteBusiness removes the record only when ownerID matches its owner.
func (s *store) DeleteBusiness(ctx context.Context, id string, ownerID string) error {
	existing, err := s.GetBusiness(ctx, id)
	if err != nil {
		return err
	}
	if existing.Owner() != ownerID {
		return constants.ErrForbidden
	}

	query := builder().Delete(tableBusinesses).Where(sq.Eq{"id": id})
	if ownerID == "" {
		query = query.Where(sq.Eq{"user_id": nil})
	} else {
		query = query.Where(sq.Eq{"user_id": ownerID})
	}

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}
