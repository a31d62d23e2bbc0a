package letter

import (
	"fmt"
	"strings"

	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/utils"
)

type Document struct {
	Filename string
	Content  string
}

func Render(l *domain.Letter) *Document {
	var b strings.Builder

	fmt.Fprintf(&b, "SURAT %s\n", strings.ToUpper(l.Type))
	fmt.Fprintf(&b, "No: %s\n", l.Number)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Yang bertanda tangan di bawah ini, Ketua RT/RW menerangkan bahwa:")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Nama: %s\n", l.RecipientName)
	if l.RecipientNIK != "" {
		fmt.Fprintf(&b, "NIK: %s\n", l.RecipientNIK)
	}
	if l.Address != "" {
		fmt.Fprintf(&b, "Alamat: %s\n", l.Address)
	}
	fmt.Fprintf(&b, "Keperluan: %s\n", l.Purpose)
	if l.Notes != "" {
		fmt.Fprintf(&b, "Keterangan: %s\n", l.Notes)
	}
	fmt.Fprintf(&b, "Tanggal: %s\n", utils.FormatDateID(l.IssuedAt))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Demikian surat ini dibuat untuk dapat dipergunakan sebagaimana mestinya.")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Hormat kami,")
	fmt.Fprintln(&b, "Ketua RT/RW")

	return &Document{
		Filename: Filename(l.Number),
		Content:  b.String(),
	}
}

func Filename(number string) string {
	return "surat-" + strings.ReplaceAll(number, "/", "-") + ".txt"
}
