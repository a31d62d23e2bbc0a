package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/utils"
)

type Document struct {
	Filename string
	Content  string
}

// Render builds the plain text report offered for download.
func Render(stats *domain.Statistics, identity domain.Identity, now time.Time) *Document {
	var b strings.Builder

	title := "LAPORAN STATISTIK UMKM MIKRO"
	if identity.IsAdmin() {
		title += " RW " + identity.Region
	}

	fmt.Fprintln(&b, title)
	fmt.Fprintln(&b, "============================")
	fmt.Fprintf(&b, "Tanggal: %s\n", utils.FormatDateID(now))
	if identity.IsAdmin() {
		fmt.Fprintf(&b, "Wilayah: RW %s\n", identity.Region)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "RINGKASAN UMKM:")
	fmt.Fprintf(&b, "- Total UMKM: %d usaha\n", stats.Total)
	fmt.Fprintf(&b, "- UMKM Aktif: %d usaha (%d%%)\n", stats.ActiveCount, Percent(stats.ActiveCount, stats.Total))
	fmt.Fprintf(&b, "- UMKM Tidak Aktif: %d usaha (%d%%)\n", stats.InactiveCount, Percent(stats.InactiveCount, stats.Total))

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "STATISTIK KEUANGAN:")
	fmt.Fprintf(&b, "- Total RAB: Rp %s\n", utils.FormatRupiah(stats.TotalBudget))
	fmt.Fprintf(&b, "- Total Modal: Rp %s\n", utils.FormatRupiah(stats.TotalCapital))
	fmt.Fprintf(&b, "- Rata-rata RAB per UMKM: Rp %s\n", utils.FormatRupiah(stats.AvgBudget.Round(0)))
	fmt.Fprintf(&b, "- Rata-rata Modal per UMKM: Rp %s\n", utils.FormatRupiah(stats.AvgCapital.Round(0)))

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "PENYERAPAN TENAGA KERJA:")
	fmt.Fprintf(&b, "- Total Karyawan: %d orang\n", stats.TotalEmployees)
	fmt.Fprintf(&b, "- Rata-rata Karyawan per UMKM: %s orang\n", strconv.FormatFloat(stats.AvgEmployees, 'f', 1, 64))

	writeDistribution(&b, "DISTRIBUSI JENIS USAHA:", stats.ByBusinessType, stats.Total)
	writeDistribution(&b, "DISTRIBUSI KATEGORI USAHA:", stats.ByCategory, stats.Total)
	writeDistribution(&b, "DISTRIBUSI STATUS OPERASIONAL:", stats.ByStatus, stats.Total)

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "---")
	fmt.Fprintln(&b, "Laporan ini dibuat oleh Sistem Pendataan UMKM RT/RW")

	return &Document{
		Filename: Filename(identity, now),
		Content:  b.String(),
	}
}

func writeDistribution(b *strings.Builder, header string, dist domain.Distribution, total int) {
	fmt.Fprintln(b)
	fmt.Fprintln(b, header)
	for _, c := range dist.Sorted() {
		fmt.Fprintf(b, "- %s: %d usaha (%d%%)\n", c.Name, c.Count, Percent(c.Count, total))
	}
}

func Filename(identity domain.Identity, now time.Time) string {
	scope := "user"
	if identity.IsAdmin() {
		scope = "rw-" + identity.Region
	}
	return fmt.Sprintf("laporan-umkm-%s-%s.txt", scope, now.Format("2006-01-02"))
}
