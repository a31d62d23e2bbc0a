package resident

import (
	"context"
	"errors"
	"testing"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/domain/dto"
	"github.com/ougirez/rtrw/internal/pkg/cache"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/store/localstore"
)

var (
	admin01 = domain.Identity{ID: "adm1", Role: domain.RoleAdmin, Region: "01"}
	admin04 = domain.Identity{ID: "adm4", Role: domain.RoleAdmin, Region: "04"}
)

func resident(name, nik, address string) *dto.ResidentRequest {
	return &dto.ResidentRequest{Name: name, NIK: nik, FamilyCardNumber: "3201010101010001", Address: address}
}

func TestResidents(t *testing.T) {
	ctx := context.Background()
	svc := NewResidentService(localstore.New(cache.NewMemory(), localstore.DefaultKeys()))

	budi, err := svc.Create(ctx, admin01, resident("Budi Santoso", "3201010101900001", "Jl. Melati 1"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err = svc.Create(ctx, admin01, resident("Siti Aminah", "3201010101900002", "Jl. Mawar 2")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err = svc.Create(ctx, admin01, resident("Budi Lagi", "3201010101900001", "")); !errors.Is(err, constants.ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate NIK, got %v", err)
	}

	for query, want := range map[string]int{"": 2, "budi": 1, "900002": 1, "mawar": 1, "kenanga": 0} {
		got, err := svc.List(ctx, admin01, dto.ListQuery{Search: query})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != want {
			t.Errorf("search %q: expected %d, got %d", query, want, len(got))
		}
	}

	if n, _ := svc.Count(ctx, admin04); n != 0 {
		t.Fatalf("expected RW 04 to have no residents, got %d", n)
	}
	if _, err = svc.Get(ctx, admin04, budi.ID); !errors.Is(err, constants.ErrDBNotFound) {
		t.Fatalf("expected ErrDBNotFound across RWs, got %v", err)
	}
	if err = svc.Delete(ctx, admin04, budi.ID); !errors.Is(err, constants.ErrDBNotFound) {
		t.Fatalf("expected ErrDBNotFound across RWs, got %v", err)
	}
	if err = svc.Delete(ctx, admin01, budi.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n, _ := svc.Count(ctx, admin01); n != 1 {
		t.Fatalf("expected 1 resident left, got %d", n)
	}
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewResidentService(localstore.New(cache.NewMemory(), localstore.DefaultKeys()))

	if _, err := svc.Create(ctx, admin01, resident("Budi", "12345", "")); !errors.Is(err, constants.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.Create(ctx, admin01, resident("Budi", "32010101019000AB", "")); !errors.Is(err, constants.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	user := domain.Identity{ID: "u", Role: domain.RoleUser, Region: "01"}
	if _, err := svc.Create(ctx, user, resident("Budi", "3201010101900001", "")); !errors.Is(err, constants.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
