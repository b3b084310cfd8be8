package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/msaude/bpagen/internal/config"
	"github.com/msaude/bpagen/internal/format"
	"github.com/msaude/bpagen/internal/model"
)

const (
	bpacTitle        = "RELATORIO DE BPA CONSOLIDADO"
	bpacCellsPerLine = 3
	bpacLinesPerPage = 20
	bpacCellWidth    = 25
	bpacGutter       = "   "
)

// BPACRel renders BPAC_REL.TXT: one block per CBO, three record cells per
// body line, twenty body lines per page. Cells show sequence, dotted
// procedure, age and quantity; absent trailing cells stay blank so the grid
// keeps its width.
func BPACRel(estab *config.Establishment, now time.Time, planned []model.PlannedBPAC) string {
	var b strings.Builder

	if len(planned) == 0 {
		pageHeader(&b, estab, bpacTitle, now, 1)
		signatureFooter(&b)
		return b.String()
	}

	groups := make(map[string][]model.PlannedBPAC)
	for _, p := range planned {
		groups[p.CBO] = append(groups[p.CBO], p)
	}
	cbos := make([]string, 0, len(groups))
	for k := range groups {
		cbos = append(cbos, k)
	}
	sort.Strings(cbos)

	page := 0
	for _, cbo := range cbos {
		recs := groups[cbo]
		perPage := bpacCellsPerLine * bpacLinesPerPage

		for start := 0; start < len(recs); start += perPage {
			end := start + perPage
			if end > len(recs) {
				end = len(recs)
			}
			page++

			pageHeader(&b, estab, bpacTitle, now, page)
			fmt.Fprintf(&b, "CNES: %s   CBO: %s\n", estab.CNES, cbo)
			fmt.Fprintf(&b, "COMPETENCIA: %s\n", format.CompetenceDisplay(estab.Competencia))
			sepLine(&b)
			bpacColumnHeader(&b)
			sepLine(&b)

			for lineStart := start; lineStart < end; lineStart += bpacCellsPerLine {
				cells := make([]string, 0, bpacCellsPerLine)
				for c := 0; c < bpacCellsPerLine; c++ {
					idx := lineStart + c
					if idx < end {
						cells = append(cells, bpacCell(idx-start+1, recs[idx]))
					} else {
						cells = append(cells, strings.Repeat(" ", bpacCellWidth))
					}
				}
				b.WriteString(strings.Join(cells, bpacGutter))
				b.WriteByte('\n')
			}
			signatureFooter(&b)
		}
	}
	return b.String()
}

func bpacColumnHeader(b *strings.Builder) {
	cell := fmt.Sprintf("%-2s %-14s %3s%4s", "SQ", "PROCEDIMENTO", "IDA", " QTD")
	b.WriteString(cell + bpacGutter + cell + bpacGutter + cell + "\n")
}

// bpacCell renders one 25-char grid cell.
func bpacCell(sq int, rec model.PlannedBPAC) string {
	return fmt.Sprintf("%02d %-14s %3d%4d", sq, format.Procedure(rec.Procedimento), rec.Idade, rec.Quantidade)
}
