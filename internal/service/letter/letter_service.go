package letter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/domain/dto"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/logger"
	"github.com/ougirez/rtrw/internal/pkg/store"
)

// numberAttempts bounds retries when two letters race for the same number.
const numberAttempts = 3

var typeCodes = map[string]string{
	"domisili":   "DOM",
	"skck":       "SKCK",
	"nikah":      "NIK",
	"usaha":      "USH",
	"izin-usaha": "IU",
}

type Service struct {
	store store.LetterStore
	now   func() time.Time
}

func NewLetterService(store store.LetterStore) *Service {
	return &Service{store: store, now: time.Now}
}

func TypeCode(letterType string) string {
	if code, ok := typeCodes[letterType]; ok {
		return code
	}
	return "SRT"
}

// Number formats the seq-th letter of a type issued in the month of at.
func Number(seq int, letterType string, at time.Time) string {
	return fmt.Sprintf("%03d/%s/%02d/%d", seq, TypeCode(letterType), int(at.Month()), at.Year())
}

func (s *Service) List(ctx context.Context, identity domain.Identity, query dto.ListQuery) ([]*domain.Letter, error) {
	letters, err := s.store.ListLetters(ctx, identity.Region)
	if err != nil {
		return nil, fmt.Errorf("store.ListLetters: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(query.Search))
	res := make([]*domain.Letter, 0, len(letters))
	for _, l := range letters {
		if query.Type != "" && l.Type != query.Type {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(l.RecipientName), term) &&
			!strings.Contains(strings.ToLower(l.Number), term) &&
			!strings.Contains(strings.ToLower(l.Purpose), term) {
			continue
		}
		res = append(res, l)
	}
	return res, nil
}

func (s *Service) Get(ctx context.Context, identity domain.Identity, id string) (*domain.Letter, error) {
	l, err := s.store.GetLetter(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetLetter: %w", err)
	}
	if l.Region != identity.Region {
		return nil, constants.ErrDBNotFound
	}
	return l, nil
}

func (s *Service) Create(ctx context.Context, identity domain.Identity, request *dto.LetterRequest) (*domain.Letter, error) {
	if !identity.IsAdmin() {
		return nil, constants.ErrForbidden
	}

	now := s.now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	letter := &domain.Letter{
		Type:          request.Type,
		RecipientName: request.RecipientName,
		RecipientNIK:  request.RecipientNIK,
		Address:       request.Address,
		Purpose:       request.Purpose,
		Notes:         request.Notes,
		IssuedAt:      now,
		Status:        domain.LetterStatusCompleted,
		Region:        identity.Region,
	}

	var lastErr error
	for attempt := 0; attempt < numberAttempts; attempt++ {
		count, err := s.store.CountLetters(ctx, identity.Region, request.Type, from, to)
		if err != nil {
			return nil, fmt.Errorf("store.CountLetters: %w", err)
		}
		letter.Number = Number(count+1, request.Type, now)

		created, err := s.store.CreateLetter(ctx, letter)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, constants.ErrConflict) {
			logger.Errorf(ctx, "create letter %s: %v", letter.Number, err)
			return nil, fmt.Errorf("store.CreateLetter: %w", err)
		}
		logger.Warnf(ctx, "letter number %s already taken, retrying", letter.Number)
		lastErr = err
	}

	return nil, fmt.Errorf("store.CreateLetter: %w", lastErr)
}

// Download renders a stored letter as a text document.
func (s *Service) Download(ctx context.Context, identity domain.Identity, id string) (*Document, error) {
	l, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	return Render(l), nil
}
