package remit

import (
	"fmt"
	"strings"

	"github.com/msaude/bpagen/internal/config"
	"github.com/msaude/bpagen/internal/model"
)

// Totals are the remittance counters carried in the type-01 header.
type Totals struct {
	Registros     int    // body line count
	BPAs          int    // distinct (kind, group, sheet) triples
	CampoControle string // 4-digit integrity field
}

// ControlField computes the header integrity field the receiving system
// recomputes on its side.
func ControlField(registros, bpas int) string {
	return fmt.Sprintf("%04d", (registros*7+bpas*3)%10000)
}

// BuildSET assembles the full remittance file content: type-01 header, then
// every consolidated line, then every individualized line. The consolidated
// block must come first; the reader anchors off the first non-header line.
// Lines are LF-joined with no trailing newline. Nothing is emitted if any
// line fails its width check.
func BuildSET(estab *config.Establishment, plannedC []model.PlannedBPAC, plannedI []model.PlannedBPAI) (string, Totals, error) {
	body := make([]string, 0, len(plannedC)+len(plannedI))
	sheets := make(map[string]struct{})

	for _, p := range plannedC {
		line, err := EncodeBPACLine(estab, p)
		if err != nil {
			return "", Totals{}, fmt.Errorf("bpa-c line %d: %w", len(body)+1, err)
		}
		body = append(body, line)
		sheets[fmt.Sprintf("C\x00%s\x00%d", p.CNES, p.Folha)] = struct{}{}
	}
	for _, p := range plannedI {
		line, err := EncodeBPAILine(estab, p)
		if err != nil {
			return "", Totals{}, fmt.Errorf("bpa-i line %d: %w", len(body)+1, err)
		}
		body = append(body, line)
		sheets[fmt.Sprintf("I\x00%s\x00%d", p.CNSProfissional, p.Folha)] = struct{}{}
	}

	totals := Totals{Registros: len(body), BPAs: len(sheets)}
	totals.CampoControle = ControlField(totals.Registros, totals.BPAs)

	header, err := EncodeHeader(estab, totals)
	if err != nil {
		return "", Totals{}, fmt.Errorf("header: %w", err)
	}

	lines := append([]string{header}, body...)
	return strings.Join(lines, "\n"), totals, nil
}
