package store

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/constants"
)

var userColumns = []string{"id", "username", "name", "password_hash", "role", "rw", "rt", "created_at"}

func (s *store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Expr("lower(username) = lower(?)", username))

	var selected domain.User
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := builder().Insert(tableUsers).
		Columns(userColumns[1:7]...).
		Values(user.Username, user.DisplayName, user.PasswordHash, string(user.Role), user.Region, user.SubRegion).
		Suffix(returning(userColumns))

	var created domain.User
	if err := s.pool.Getx(ctx, &created, query); err != nil {
		err = wrapErr(err)
		if errors.Is(err, constants.ErrConflict) {
			return nil, constants.ErrUsernameTaken
		}
		return nil, err
	}

	return &created, nil
}
