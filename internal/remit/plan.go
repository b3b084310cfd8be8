package remit

import (
	"sort"

	"github.com/msaude/bpagen/internal/format"
	"github.com/msaude/bpagen/internal/model"
)

// Per-sheet record caps, inherited from the paper-form convention the federal
// reader still enforces.
const (
	SheetCapBPAI = 99
	SheetCapBPAC = 20
)

// PlanBPAI orders individualized records for emission and assigns sheet and
// sequence numbers. Records are partitioned by professional CNS; sheets
// restart at 1 for each professional and never mix professionals. The input
// slice is left untouched.
func PlanBPAI(records []model.BPAIRecord) []model.PlannedBPAI {
	groups := make(map[string][]model.BPAIRecord)
	for _, r := range records {
		groups[r.CNSProfissional] = append(groups[r.CNSProfissional], r)
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	planned := make([]model.PlannedBPAI, 0, len(records))
	for _, k := range keys {
		part := append([]model.BPAIRecord(nil), groups[k]...)
		sort.SliceStable(part, func(i, j int) bool {
			if part[i].Procedimento != part[j].Procedimento {
				return part[i].Procedimento < part[j].Procedimento
			}
			return format.Date(part[i].DataAtendimento) < format.Date(part[j].DataAtendimento)
		})

		folha, seq := 1, 1
		for _, r := range part {
			planned = append(planned, model.PlannedBPAI{BPAIRecord: r, Folha: folha, Seq: seq})
			seq++
			if seq > SheetCapBPAI {
				seq = 1
				folha++
			}
		}
	}
	return planned
}

// PlanBPAC orders consolidated records for emission. Partitioning is by CNES
// (one competence per run); within a partition the upstream aggregation order
// is preserved.
func PlanBPAC(records []model.BPACRecord) []model.PlannedBPAC {
	groups := make(map[string][]model.BPACRecord)
	for _, r := range records {
		groups[r.CNES] = append(groups[r.CNES], r)
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	planned := make([]model.PlannedBPAC, 0, len(records))
	for _, k := range keys {
		folha, seq := 1, 1
		for _, r := range groups[k] {
			planned = append(planned, model.PlannedBPAC{BPACRecord: r, Folha: folha, Seq: seq})
			seq++
			if seq > SheetCapBPAC {
				seq = 1
				folha++
			}
		}
	}
	return planned
}
