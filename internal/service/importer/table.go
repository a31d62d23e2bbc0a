package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ougirez/rtrw/internal/domain"
	"github.com/shopspring/decimal"
)

type column int

const (
	colSkip column = iota
	colName
	colOwner
	colType
	colCategory
	colStatus
	colBudget
	colCapital
	colEmployees
	colPhone
	colAddress
)

var headers = map[string]column{
	"nama usaha":      colName,
	"pemilik":         colOwner,
	"jenis usaha":     colType,
	"kategori":        colCategory,
	"kategori usaha":  colCategory,
	"status":          colStatus,
	"rab":             colBudget,
	"modal":           colCapital,
	"modal awal":      colCapital,
	"karyawan":        colEmployees,
	"jumlah karyawan": colEmployees,
	"no hp":           colPhone,
	"nomor hp":        colPhone,
	"alamat":          colAddress,
}

// ParseTable converts the first table of doc whose header names a
// "Nama Usaha" column into UMKM records. Unknown columns are ignored.
func ParseTable(doc *goquery.Document) ([]*domain.Business, error) {
	var (
		records []*domain.Business
		err     error
		found   bool
	)

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		cols := headerColumns(table)
		if !hasColumn(cols, colName) {
			return true
		}
		found = true

		table.Find("tr").EachWithBreak(func(i int, tr *goquery.Selection) bool {
			cells := tr.Find("td")
			if cells.Length() == 0 {
				// header row
				return true
			}

			record, parseErr := parseRow(cols, cells)
			if parseErr != nil {
				err = fmt.Errorf("row %d: %w", i, parseErr)
				return false
			}
			if record.Name != "" {
				records = append(records, record)
			}
			return true
		})
		return false
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("no table with a %q column", "Nama Usaha")
	}

	return records, nil
}

func headerColumns(table *goquery.Selection) []column {
	var cols []column
	table.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		ths := tr.Find("th")
		if ths.Length() == 0 {
			return true
		}
		ths.Each(func(_ int, th *goquery.Selection) {
			cols = append(cols, headers[normalizeHeader(th.Text())])
		})
		return false
	})
	return cols
}

func hasColumn(cols []column, want column) bool {
	for _, c := range cols {
		if c == want {
			return true
		}
	}
	return false
}

func parseRow(cols []column, cells *goquery.Selection) (*domain.Business, error) {
	b := &domain.Business{
		Status:         domain.StatusActive,
		Budget:         decimal.Zero,
		InitialCapital: decimal.Zero,
	}

	var err error
	cells.EachWithBreak(func(i int, td *goquery.Selection) bool {
		if i >= len(cols) {
			return false
		}
		text := strings.TrimSpace(td.Text())

		switch cols[i] {
		case colName:
			b.Name = text
		case colOwner:
			b.OwnerName = text
		case colType:
			b.BusinessType = text
		case colCategory:
			b.Category = text
		case colStatus:
			b.Status, err = parseStatus(text)
		case colBudget:
			b.Budget, err = parseAmount(text)
		case colCapital:
			b.InitialCapital, err = parseAmount(text)
		case colEmployees:
			b.Employees, err = parseCount(text)
		case colPhone:
			b.Phone = text
		case colAddress:
			b.Address = text
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))
	s = strings.TrimSuffix(s, " (rp)")
	return strings.ReplaceAll(s, ".", "")
}

func parseStatus(s string) (domain.BusinessStatus, error) {
	if s == "" {
		return domain.StatusActive, nil
	}
	for _, status := range []domain.BusinessStatus{domain.StatusActive, domain.StatusInactive, domain.StatusTemporarilyClosed} {
		if strings.EqualFold(s, string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// parseAmount reads rupiah amounts written as "Rp 1.500.000" or "2.500,50".
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "Rp"))
	if s == "" || s == "-" {
		return decimal.Zero, nil
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount: %w", err)
	}
	return d, nil
}

func parseCount(s string) (int, error) {
	if s == "" || s == "-" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.Fields(s)[0])
	if err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return n, nil
}
