package importer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/logger"
)

// Sink receives imported records. The local UMKM collection implements it.
type Sink interface {
	Insert(ctx context.Context, item *domain.Business) (*domain.Business, error)
}

type Service struct {
	sink   Sink
	client *http.Client
	now    func() time.Time

	retryInterval time.Duration
	maxRetries    uint64
}

func NewImporterService(sink Sink) *Service {
	return &Service{
		sink:          sink,
		client:        &http.Client{Timeout: 30 * time.Second},
		now:           time.Now,
		retryInterval: 500 * time.Millisecond,
		maxRetries:    10,
	}
}

// Import reads an HTML table from a file path or an http(s) URL and appends
// its rows to the local cache.
func (s *Service) Import(ctx context.Context, source string) ([]*domain.Business, error) {
	var (
		doc *goquery.Document
		err error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		doc, err = s.fetch(ctx, source)
	} else {
		doc, err = readFile(source)
	}
	if err != nil {
		return nil, err
	}

	return s.save(ctx, doc)
}

// ImportReader is Import for an already opened document.
func (s *Service) ImportReader(ctx context.Context, r io.Reader) ([]*domain.Business, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}
	return s.save(ctx, doc)
}

func (s *Service) save(ctx context.Context, doc *goquery.Document) ([]*domain.Business, error) {
	records, err := ParseTable(doc)
	if err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}

	now := s.now()
	saved := make([]*domain.Business, 0, len(records))
	for _, r := range records {
		r.CreatedAt, r.UpdatedAt = now, now
		created, err := s.sink.Insert(ctx, r)
		if err != nil {
			return saved, fmt.Errorf("insert %q: %w", r.Name, err)
		}
		saved = append(saved, created)
	}

	logger.Infof(ctx, "imported %d UMKM records into the local cache", len(saved))

	return saved, nil
}

func (s *Service) fetch(ctx context.Context, url string) (doc *goquery.Document, err error) {
	var resp *http.Response
	err = backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}

			var httpErr error
			resp, httpErr = s.client.Do(req)
			if httpErr != nil {
				logger.Warnf(ctx, "fetch %s: %v", url, httpErr)
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			if resp.StatusCode != http.StatusOK {
				_ = resp.Body.Close()
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retryInterval), s.maxRetries),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close reader: %w", closeErr)
		}
	}()

	doc, err = goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}
	return doc, nil
}

func readFile(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}
	return doc, nil
}
