package store

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

//go:embed schema.sql
var schemaSQL string

// BusinessFilter selects visible UMKM records: by owner for regular users,
// by RW for admins. Exactly one of the two must be set.
type BusinessFilter struct {
	OwnerID *string
	Region  *string
}

func (f BusinessFilter) Validate() error {
	if (f.OwnerID == nil) == (f.Region == nil) {
		return fmt.Errorf("business filter needs exactly one of owner or region")
	}
	return nil
}

func FilterFor(identity domain.Identity) BusinessFilter {
	if identity.IsAdmin() {
		region := identity.Region
		return BusinessFilter{Region: &region}
	}
	owner := identity.ID
	return BusinessFilter{OwnerID: &owner}
}

type BusinessStore interface {
	ListBusinesses(ctx context.Context, filter BusinessFilter) ([]*domain.Business, error)
	GetBusiness(ctx context.Context, id string) (*domain.Business, error)
	CreateBusiness(ctx context.Context, business *domain.Business) (*domain.Business, error)
	UpdateBusiness(ctx context.Context, business *domain.Business) (*domain.Business, error)
	DeleteBusiness(ctx context.Context, id string, ownerID string) error
}

type FinanceStore interface {
	ListFinance(ctx context.Context, region string) ([]*domain.FinanceEntry, error)
	CreateFinance(ctx context.Context, entry *domain.FinanceEntry) (*domain.FinanceEntry, error)
	DeleteFinance(ctx context.Context, id string, region string) error
}

type LetterStore interface {
	ListLetters(ctx context.Context, region string) ([]*domain.Letter, error)
	GetLetter(ctx context.Context, id string) (*domain.Letter, error)
	CountLetters(ctx context.Context, region, letterType string, from, to time.Time) (int, error)
	CreateLetter(ctx context.Context, letter *domain.Letter) (*domain.Letter, error)
}

type ResidentStore interface {
	ListResidents(ctx context.Context, region string) ([]*domain.Resident, error)
	GetResident(ctx context.Context, id string) (*domain.Resident, error)
	CreateResident(ctx context.Context, resident *domain.Resident) (*domain.Resident, error)
	DeleteResident(ctx context.Context, id string, region string) error
}

type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Store interface {
	BusinessStore
	FinanceStore
	LetterStore
	ResidentStore
	UserStore
	Probe(ctx context.Context) error
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}

func (s *store) Probe(ctx context.Context) error {
	return wrapErr(s.pool.Ping(ctx))
}

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, pool Pool) error {
	if _, err := pool.Execx(ctx, squirrel.Expr(schemaSQL)); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
