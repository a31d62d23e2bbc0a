package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/domain/dto"
	"github.com/ougirez/rtrw/internal/pkg/cache"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/store/localstore"
)

func newService() *Service {
	return NewService(localstore.New(cache.NewMemory(), localstore.DefaultKeys()), Config{
		Secret:         "test-secret",
		TokenTTL:       time.Hour,
		AllowedRegions: []string{"01", "04"},
	})
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	signup, err := svc.SignupUser(ctx, &dto.SignupRequest{Username: "budi", Password: "rahasia", Name: "Budi", Region: "01"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if signup.Identity.Role != domain.RoleUser || signup.Identity.Region != "01" || signup.AuthToken == "" {
		t.Fatalf("unexpected signup response %+v", signup)
	}

	login, err := svc.LoginUser(ctx, &dto.LoginRequest{Username: "BUDI", Password: "rahasia"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	identity, err := svc.Identify(login.AuthToken)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if identity != signup.Identity {
		t.Fatalf("expected %+v, got %+v", signup.Identity, identity)
	}

	if _, err = svc.LoginUser(ctx, &dto.LoginRequest{Username: "budi", Password: "salah123"}); !errors.Is(err, constants.ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if _, err = svc.LoginUser(ctx, &dto.LoginRequest{Username: "nobody", Password: "rahasia"}); !errors.Is(err, constants.ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword for unknown user, got %v", err)
	}
}

func TestSignup_Rejects(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	if _, err := svc.SignupUser(ctx, &dto.SignupRequest{Username: "siti", Password: "rahasia", Name: "Siti", Region: "01"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cases := []struct {
		name string
		req  dto.SignupRequest
		want error
	}{
		{"taken", dto.SignupRequest{Username: "Siti", Password: "rahasia", Name: "S", Region: "04"}, constants.ErrUsernameTaken},
		{"region", dto.SignupRequest{Username: "agus", Password: "rahasia", Name: "A", Region: "07"}, constants.ErrRegionNotAllowed},
		{"short password", dto.SignupRequest{Username: "agus", Password: "123", Name: "A", Region: "01"}, constants.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SignupUser(ctx, &tc.req); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateAdmin(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	admin, err := svc.CreateAdmin(ctx, &dto.CreateAdminRequest{Username: "adminrw04", Password: "admin123", Name: "Ketua RW 04", Region: "04"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if admin.Role != domain.RoleAdmin || admin.PasswordHash == "admin123" {
		t.Fatalf("unexpected admin %+v", admin)
	}

	login, err := svc.LoginUser(ctx, &dto.LoginRequest{Username: "adminrw04", Password: "admin123"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !login.Identity.IsAdmin() {
		t.Fatal("expected an admin identity")
	}
}

func TestIdentify_BadToken(t *testing.T) {
	if _, err := newService().Identify("not-a-token"); !errors.Is(err, constants.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
