package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/cache"
	"github.com/ougirez/rtrw/internal/pkg/store/localstore"
)

func TestRender_AdminReport(t *testing.T) {
	stats := Compute([]*domain.Business{
		{Status: domain.StatusActive, BusinessType: "Fashion", Category: "Mikro", Budget: rupiah(0), Employees: 1},
		{Status: domain.StatusInactive, BusinessType: "Kuliner", Category: "Mikro", Budget: rupiah(500000), InitialCapital: rupiah(250000)},
		{Status: domain.StatusActive, BusinessType: "Kuliner", Budget: rupiah(1000000), Employees: 3},
	})
	admin := domain.Identity{ID: "adm", Role: domain.RoleAdmin, Region: "01"}
	now := time.Date(2024, 8, 17, 10, 0, 0, 0, time.UTC)

	doc := Render(stats, admin, now)

	if doc.Filename != "laporan-umkm-rw-01-2024-08-17.txt" {
		t.Errorf("unexpected filename %s", doc.Filename)
	}

	for _, line := range []string{
		"LAPORAN STATISTIK UMKM MIKRO RW 01",
		"Tanggal: 17/8/2024",
		"Wilayah: RW 01",
		"- Total UMKM: 3 usaha",
		"- UMKM Aktif: 2 usaha (67%)",
		"- UMKM Tidak Aktif: 1 usaha (33%)",
		"- Total RAB: Rp 1.500.000",
		"- Total Modal: Rp 250.000",
		"- Rata-rata RAB per UMKM: Rp 500.000",
		"- Rata-rata Modal per UMKM: Rp 83.333",
		"- Total Karyawan: 4 orang",
		"- Rata-rata Karyawan per UMKM: 1.3 orang",
		"- Mikro: 2 usaha (67%)",
		"- Aktif: 2 usaha (67%)",
		"Laporan ini dibuat oleh Sistem Pendataan UMKM RT/RW",
	} {
		if !strings.Contains(doc.Content, line+"\n") {
			t.Errorf("report is missing line %q\n%s", line, doc.Content)
		}
	}

	kuliner := strings.Index(doc.Content, "- Kuliner: 2 usaha (67%)")
	fashion := strings.Index(doc.Content, "- Fashion: 1 usaha (33%)")
	if kuliner < 0 || fashion < 0 || kuliner > fashion {
		t.Errorf("expected Kuliner listed before Fashion\n%s", doc.Content)
	}
}

func TestRender_UserReportHasNoRegion(t *testing.T) {
	user := domain.Identity{ID: "u1", Role: domain.RoleUser, Region: "04"}
	doc := Render(Compute(nil), user, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	if doc.Filename != "laporan-umkm-user-2024-01-02.txt" {
		t.Errorf("unexpected filename %s", doc.Filename)
	}
	if strings.Contains(doc.Content, "Wilayah:") || strings.Contains(doc.Content, "RW 04") {
		t.Errorf("user report must not mention the RW\n%s", doc.Content)
	}
	if !strings.Contains(doc.Content, "- UMKM Aktif: 0 usaha (0%)\n") {
		t.Errorf("expected zero percentages for empty report\n%s", doc.Content)
	}
}

func TestService_StatisticsUsesVisibility(t *testing.T) {
	ctx := context.Background()
	ls := localstore.New(cache.NewMemory(), localstore.DefaultKeys())

	owner1, owner2 := "u1", "u2"
	for _, b := range []*domain.Business{
		{Name: "A", OwnerID: &owner1, Region: "01", Status: domain.StatusActive},
		{Name: "B", OwnerID: &owner2, Region: "01", Status: domain.StatusInactive},
		{Name: "C", OwnerID: &owner2, Region: "04", Status: domain.StatusActive},
	} {
		if _, err := ls.CreateBusiness(ctx, b); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	svc := NewReportService(ls)

	adminStats, err := svc.Statistics(ctx, domain.Identity{ID: "adm", Role: domain.RoleAdmin, Region: "01"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if adminStats.Total != 2 {
		t.Errorf("admin RW 01 should aggregate 2 records, got %d", adminStats.Total)
	}

	userStats, err := svc.Statistics(ctx, domain.Identity{ID: "u2", Role: domain.RoleUser, Region: "01"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if userStats.Total != 2 || userStats.ActiveCount != 1 {
		t.Errorf("user u2 should aggregate own 2 records, got %+v", userStats)
	}
}
