package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/msaude/bpagen/internal/config"
	"github.com/msaude/bpagen/internal/fixedwidth"
	"github.com/msaude/bpagen/internal/format"
	"github.com/msaude/bpagen/internal/model"
	"github.com/msaude/bpagen/internal/sigtap"
)

const bpaiRecordsPerPage = 19

const bpaiTitle = "RELATORIO DE BPA INDIVIDUALIZADO"

// BPAIRel renders BPAI_REL.TXT: one block per professional (CNS + CBO),
// professionals ascending by CNS, records ordered by encounter date. Each
// record takes two body lines; a page holds at most 19 records and maps to
// one per-professional sheet.
func BPAIRel(estab *config.Establishment, now time.Time, planned []model.PlannedBPAI, resolver sigtap.Resolver) string {
	var b strings.Builder

	if len(planned) == 0 {
		pageHeader(&b, estab, bpaiTitle, now, 1)
		signatureFooter(&b)
		return b.String()
	}

	type profKey struct{ cns, cbo string }
	groups := make(map[profKey][]model.PlannedBPAI)
	for _, p := range planned {
		k := profKey{p.CNSProfissional, p.CBO}
		groups[k] = append(groups[k], p)
	}
	keys := make([]profKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].cns != keys[j].cns {
			return keys[i].cns < keys[j].cns
		}
		return keys[i].cbo < keys[j].cbo
	})

	page := 0
	for _, k := range keys {
		recs := append([]model.PlannedBPAI(nil), groups[k]...)
		sort.SliceStable(recs, func(i, j int) bool {
			return format.Date(recs[i].DataAtendimento) < format.Date(recs[j].DataAtendimento)
		})

		profSheet := 0
		for start := 0; start < len(recs); start += bpaiRecordsPerPage {
			end := start + bpaiRecordsPerPage
			if end > len(recs) {
				end = len(recs)
			}
			page++
			profSheet++

			pageHeader(&b, estab, bpaiTitle, now, page)
			fmt.Fprintf(&b, "CNES: %s   CNS PROFISSIONAL: %s   CBO: %s\n", estab.CNES, k.cns, k.cbo)
			fmt.Fprintf(&b, "COMPETENCIA: %-44s FOLHA PROF.: %03d\n", format.CompetenceDisplay(estab.Competencia), profSheet)
			sepLine(&b)
			bpaiColumnHeader(&b)
			sepLine(&b)

			for i, rec := range recs[start:end] {
				writeBPAIRecord(&b, i+1, rec, resolver)
			}
			signatureFooter(&b)
		}
	}
	return b.String()
}

func bpaiColumnHeader(b *strings.Builder) {
	b.WriteString("SQ CNS DO PACIENTE NASCIMENTO S RA MUNIC. ATENDIMEN. QTD. CID    CA\n")
	b.WriteString("       NOME DO PACIENTE               PROCEDIMENTO           PREVIA SITUACAO\n")
}

// writeBPAIRecord emits the two lines of one listing entry. The monetary slot
// is quantity times the resolved unit value, 14 chars right-aligned; unknown
// procedures read 0,00. A blank CID keeps its 6-space slot so columns hold.
func writeBPAIRecord(b *strings.Builder, sq int, rec model.PlannedBPAI, resolver sigtap.Resolver) {
	unit, _ := resolver.UnitValueCents(rec.Procedimento)
	previa := format.CurrencyBR(int64(rec.Quantidade) * unit)

	situacao := "Sem Erros"
	if !rec.Validade.Clean() {
		situacao = "Com Erros"
	}

	fmt.Fprintf(b, "%02d %s %s %s %s %s %s %4d %s %s\n",
		sq,
		fixedwidth.PadRight(rec.CNSPaciente, 15, ' '),
		format.DateDisplay(rec.DataNascimento),
		fixedwidth.PadRight(rec.Sexo, 1, ' '),
		fixedwidth.PadRight(rec.Raca, 2, ' '),
		fixedwidth.PadRight(rec.IBGEMunicipio, 6, ' '),
		format.DateDisplay(rec.DataAtendimento),
		rec.Quantidade,
		fixedwidth.PadRight(format.UpperSanitize(rec.CID), 6, ' '),
		fixedwidth.PadRight(rec.CaraterAtend, 2, ' '),
	)
	fmt.Fprintf(b, "       %s %s %s %s\n",
		fixedwidth.PadRight(format.UpperSanitize(rec.NomePaciente), 30, ' '),
		format.Procedure(rec.Procedimento),
		fixedwidth.PadLeft(previa, 14, ' '),
		fixedwidth.PadRight(situacao, 9, ' '),
	)
}
