// Package report renders the three companion listings of a remittance:
// the control report (RELEXP.PRN), the individualized listing (BPAI_REL.TXT)
// and the consolidated listing (BPAC_REL.TXT). Layouts are 80-column print
// pages with a signature footer on every page; content is plain ASCII after
// sanitizing, LF line endings.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/msaude/bpagen/internal/config"
	"github.com/msaude/bpagen/internal/format"
)

const pageWidth = 80

func sepLine(b *strings.Builder) {
	b.WriteString(strings.Repeat("-", pageWidth))
	b.WriteByte('\n')
}

func centered(b *strings.Builder, s string) {
	pad := (pageWidth - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(s)
	b.WriteByte('\n')
}

// pageHeader writes the shared listing masthead: global page number, layout
// version, facility masthead, generation date and competence display.
func pageHeader(b *strings.Builder, estab *config.Establishment, title string, now time.Time, page int) {
	fmt.Fprintf(b, "Folha: %04d\n", page)
	sepLine(b)
	fmt.Fprintf(b, "%-57s Versao: %s\n", "SECRETARIA MUNICIPAL DE SAUDE", config.LayoutVersion)
	fmt.Fprintf(b, "%-57s Data..: %s\n", title, now.Format("02/01/2006"))
	fmt.Fprintf(b, "%-57s Comp..: %s\n", "SISTEMA DE INFORMACOES AMBULATORIAIS - SIA/SUS", format.CompetenceDisplay(estab.Competencia))
	sepLine(b)
}

// signatureFooter writes the three-signature block emitted on every page.
func signatureFooter(b *strings.Builder) {
	b.WriteByte('\n')
	b.WriteString("______________________________          ______________________________\n")
	b.WriteString(" Responsavel pela Unidade                Gestor Municipal de Saude\n")
	b.WriteByte('\n')
	b.WriteString("               ______________________________\n")
	b.WriteString("                Gestor Estadual de Saude\n")
}
