package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/msaude/bpagen/internal/config"
	"github.com/msaude/bpagen/internal/format"
)

// RelExp renders RELEXP.PRN, the single-page remittance control report.
// The displayed filename is the one the operator types into the federal
// tooling: PA<SIGLA>.<3-letter month>.
func RelExp(estab *config.Establishment, now time.Time, registros, bpas int, controle string) string {
	var b strings.Builder

	sepLine(&b)
	centered(&b, "SISTEMA DE INFORMACOES AMBULATORIAIS - SIA/SUS")
	centered(&b, "BOLETIM DE PRODUCAO AMBULATORIAL - BPA")
	centered(&b, "RELATORIO DE CONTROLE DE REMESSA")
	sepLine(&b)

	fmt.Fprintf(&b, "VERSAO DO LAYOUT..: %-35s EMISSAO...: %s\n", config.LayoutVersion, now.Format("02/01/2006"))
	fmt.Fprintf(&b, "COMPETENCIA.......: %-35s VERSAO BD.: %s\n", format.CompetenceDisplay(estab.Competencia), estab.VersaoBanco())
	fmt.Fprintf(&b, "CNES..............: %s\n", estab.CNES)
	b.WriteByte('\n')

	fmt.Fprintf(&b, "ORGAO DE ORIGEM...: %s\n", strings.Repeat("_", 45))
	fmt.Fprintf(&b, "ORGAO DE DESTINO..: %s\n", strings.Repeat("_", 45))
	b.WriteByte('\n')

	fmt.Fprintf(&b, "ARQUIVO GERADO....: PA%s.%s\n", estab.Sigla, format.MonthAbbrev(estab.Competencia))
	fmt.Fprintf(&b, "TOTAL DE REGISTROS: %06d\n", registros)
	fmt.Fprintf(&b, "TOTAL DE FOLHAS...: %06d\n", bpas)
	fmt.Fprintf(&b, "CAMPO DE CONTROLE.: %s\n", controle)

	signatureFooter(&b)
	return b.String()
}
