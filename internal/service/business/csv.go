package business

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/domain/dto"
)

var csvHeader = []string{"Nama Usaha", "Pemilik", "Jenis Usaha", "Nomor HP", "Status"}

// ExportCSV writes the filtered list the way the data table shows it.
func (s *Service) ExportCSV(ctx context.Context, identity domain.Identity, query dto.BusinessQuery) ([]byte, error) {
	records, err := s.List(ctx, identity, query)
	if err != nil {
		return nil, err
	}
	return EncodeCSV(records)
}

func EncodeCSV(records []*domain.Business) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, b := range records {
		if err := w.Write([]string{b.Name, b.OwnerName, b.BusinessType, b.Phone, string(b.Status)}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return buf.Bytes(), nil
}

func CSVFilename(now time.Time) string {
	return fmt.Sprintf("data-umkm-%s.csv", now.Format("2006-01-02"))
}
