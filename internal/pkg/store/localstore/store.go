// Package localstore implements the record store on top of the local cache.
// It is what the application runs on while the remote database is not
// configured, and its UMKM collection is what the migration drains.
package localstore

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/cache"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/store"
)

type Keys struct {
	Business string
	Finance  string
	Letter   string
	Resident string
	User     string
}

func DefaultKeys() Keys {
	return Keys{
		Business: constants.DefaultBusinessKey,
		Finance:  "keuangan",
		Letter:   "surat",
		Resident: "warga",
		User:     "registered_users",
	}
}

type Store struct {
	cache      cache.Cache
	businesses *Collection[domain.Business, *domain.Business]
	finance    *Collection[domain.FinanceEntry, *domain.FinanceEntry]
	letters    *Collection[domain.Letter, *domain.Letter]
	residents  *Collection[domain.Resident, *domain.Resident]
	users      *Collection[domain.User, *domain.User]
	now        func() time.Time
}

var _ store.Store = (*Store)(nil)

func New(c cache.Cache, keys Keys) *Store {
	return &Store{
		cache:      c,
		businesses: NewCollection[domain.Business](c, keys.Business),
		finance:    NewCollection[domain.FinanceEntry](c, keys.Finance),
		letters:    NewCollection[domain.Letter](c, keys.Letter),
		residents:  NewCollection[domain.Resident](c, keys.Resident),
		users:      NewCollection[domain.User](c, keys.User),
		now:        time.Now,
	}
}

func (s *Store) Probe(ctx context.Context) error {
	return s.cache.Ping(ctx)
}

// Businesses exposes the raw UMKM collection for importers.
func (s *Store) Businesses() *Collection[domain.Business, *domain.Business] {
	return s.businesses
}

func (s *Store) ListBusinesses(ctx context.Context, filter store.BusinessFilter) ([]*domain.Business, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	all, err := s.businesses.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Business, 0, len(all))
	for _, b := range all {
		if filter.OwnerID != nil && b.Owner() != *filter.OwnerID {
			continue
		}
		if filter.Region != nil && b.Region != *filter.Region {
			continue
		}
		res = append(res, b)
	}
	return res, nil
}

func (s *Store) GetBusiness(ctx context.Context, id string) (*domain.Business, error) {
	return s.businesses.Find(ctx, id)
}

func (s *Store) CreateBusiness(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	now := s.now()
	b := *business
	b.CreatedAt, b.UpdatedAt = now, now
	return s.businesses.Insert(ctx, &b)
}

func (s *Store) UpdateBusiness(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	b := *business
	b.UpdatedAt = s.now()
	return s.businesses.Replace(ctx, &b)
}

func (s *Store) DeleteBusiness(ctx context.Context, id string, ownerID string) error {
	return s.businesses.Remove(ctx, id, func(b *domain.Business) error {
		if b.Owner() != ownerID {
			return constants.ErrForbidden
		}
		return nil
	})
}

func (s *Store) ListFinance(ctx context.Context, region string) ([]*domain.FinanceEntry, error) {
	all, err := s.finance.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterRegion(all, func(e *domain.FinanceEntry) string { return e.Region }, region), nil
}

func (s *Store) CreateFinance(ctx context.Context, entry *domain.FinanceEntry) (*domain.FinanceEntry, error) {
	e := *entry
	e.CreatedAt = s.now()
	return s.finance.Insert(ctx, &e)
}

func (s *Store) DeleteFinance(ctx context.Context, id string, region string) error {
	return s.finance.Remove(ctx, id, func(e *domain.FinanceEntry) error {
		if e.Region != region {
			return constants.ErrDBNotFound
		}
		return nil
	})
}

func (s *Store) ListLetters(ctx context.Context, region string) ([]*domain.Letter, error) {
	all, err := s.letters.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterRegion(all, func(l *domain.Letter) string { return l.Region }, region), nil
}

func (s *Store) GetLetter(ctx context.Context, id string) (*domain.Letter, error) {
	return s.letters.Find(ctx, id)
}

func (s *Store) CountLetters(ctx context.Context, region, letterType string, from, to time.Time) (int, error) {
	letters, err := s.ListLetters(ctx, region)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, l := range letters {
		if l.Type == letterType && !l.IssuedAt.Before(from) && l.IssuedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func (s *Store) CreateLetter(ctx context.Context, letter *domain.Letter) (*domain.Letter, error) {
	var created *domain.Letter
	err := s.letters.Mutate(ctx, func(items []domain.Letter) ([]domain.Letter, error) {
		for i := range items {
			if items[i].Region == letter.Region && items[i].Number == letter.Number {
				return nil, constants.ErrConflict
			}
		}
		l := *letter
		l.ID = newID()
		created = &l
		return append(items, l), nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Store) ListResidents(ctx context.Context, region string) ([]*domain.Resident, error) {
	all, err := s.residents.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterRegion(all, func(r *domain.Resident) string { return r.Region }, region), nil
}

func (s *Store) GetResident(ctx context.Context, id string) (*domain.Resident, error) {
	return s.residents.Find(ctx, id)
}

func (s *Store) CreateResident(ctx context.Context, resident *domain.Resident) (*domain.Resident, error) {
	var created *domain.Resident
	err := s.residents.Mutate(ctx, func(items []domain.Resident) ([]domain.Resident, error) {
		for i := range items {
			if items[i].Region == resident.Region && items[i].NIK == resident.NIK {
				return nil, constants.ErrConflict
			}
		}
		r := *resident
		r.ID = newID()
		r.CreatedAt = s.now()
		created = &r
		return append(items, r), nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Store) DeleteResident(ctx context.Context, id string, region string) error {
	return s.residents.Remove(ctx, id, func(r *domain.Resident) error {
		if r.Region != region {
			return constants.ErrDBNotFound
		}
		return nil
	})
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (s *Store) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	var created *domain.User
	err := s.users.Mutate(ctx, func(items []domain.User) ([]domain.User, error) {
		for i := range items {
			if strings.EqualFold(items[i].Username, user.Username) {
				return nil, constants.ErrUsernameTaken
			}
		}
		u := *user
		u.ID = newID()
		u.CreatedAt = s.now()
		created = &u
		return append(items, u), nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func filterRegion[T any](items []*T, region func(*T) string, want string) []*T {
	res := make([]*T, 0, len(items))
	for _, item := range items {
		if region(item) == want {
			res = append(res, item)
		}
	}
	return res
}

func newID() string {
	return uuid.NewString()
}
