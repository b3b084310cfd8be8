package remit

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/msaude/bpagen/internal/config"
	"github.com/msaude/bpagen/internal/format"
	"github.com/msaude/bpagen/internal/model"
	"github.com/msaude/bpagen/internal/report"
	"github.com/msaude/bpagen/internal/sigtap"
)

// Error kinds surfaced by a failed run. Record-data defects never produce
// errors; they degrade inside the formatters.
const (
	KindConfigInvalid    = "config-invalid"
	KindEncodingOverflow = "encoding-overflow"
)

// RunError wraps a generation failure with its kind.
type RunError struct {
	Kind string
	Err  error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// Input is everything one generation run consumes.
type Input struct {
	Estab    *config.Establishment
	BPAI     []model.BPAIRecord
	BPAC     []model.BPACRecord
	Resolver sigtap.Resolver // nil means no catalog: every value is 0
	Now      time.Time       // zero means the host clock; reports carry this date
}

// Bundle is the atomic result of a run: the remittance file, its three
// companion reports and the run statistics. All artifact bytes are Latin-1.
type Bundle struct {
	RunID       uuid.UUID
	SETFilename string
	SET         []byte
	RelExp      []byte
	BPAIRel     []byte
	BPACRel     []byte
	Summary     model.RunSummary
}

// Stats exposes the run counters in map form.
func (b *Bundle) Stats() map[string]any {
	return b.Summary.StatsMap()
}

// Generate runs the full codec: plan both record kinds, build the SET file,
// then render the three reports off the same planned streams. Either every
// artifact comes back or none does.
func Generate(log zerolog.Logger, in Input) (*Bundle, error) {
	totalStart := time.Now()

	if in.Estab == nil {
		return nil, &RunError{Kind: KindConfigInvalid, Err: errors.New("establishment config is required")}
	}
	if err := in.Estab.Validate(); err != nil {
		return nil, &RunError{Kind: KindConfigInvalid, Err: err}
	}

	resolver := in.Resolver
	if resolver == nil {
		resolver = sigtap.Zero{}
	}
	// One cache per run; runs never share resolver state.
	memo := sigtap.NewMemo(resolver)

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	runID := uuid.New()

	planStart := time.Now()
	plannedC := PlanBPAC(in.BPAC)
	plannedI := PlanBPAI(in.BPAI)
	planDur := time.Since(planStart)

	writeStart := time.Now()
	set, totals, err := BuildSET(in.Estab, plannedC, plannedI)
	if err != nil {
		return nil, &RunError{Kind: KindEncodingOverflow, Err: err}
	}
	writeDur := time.Since(writeStart)

	reportStart := time.Now()
	relexp := report.RelExp(in.Estab, now, totals.Registros, totals.BPAs, totals.CampoControle)
	bpaiRel := report.BPAIRel(in.Estab, now, plannedI, memo)
	bpacRel := report.BPACRel(in.Estab, now, plannedC)
	reportDur := time.Since(reportStart)

	setFilename := "PA" + in.Estab.Sigla + ".SET"
	summary := model.RunSummary{
		RunID:          runID.String(),
		CNES:           in.Estab.CNES,
		Competencia:    in.Estab.Competencia,
		BPAICount:      len(in.BPAI),
		BPACCount:      len(in.BPAC),
		TotalRegistros: totals.Registros,
		TotalBPAs:      totals.BPAs,
		CampoControle:  totals.CampoControle,
		SETFilename:    setFilename,
		DurationPlan:   planDur,
		DurationWrite:  writeDur,
		DurationReport: reportDur,
		DurationTotal:  time.Since(totalStart),
	}

	log.Info().
		Str("run_id", summary.RunID).
		Str("competencia", summary.Competencia).
		Int("bpai", summary.BPAICount).
		Int("bpac", summary.BPACCount).
		Int("registros", summary.TotalRegistros).
		Int("folhas", summary.TotalBPAs).
		Str("controle", summary.CampoControle).
		Str("duration", summary.DurationTotal.String()).
		Msg("remittance bundle generated")

	return &Bundle{
		RunID:       runID,
		SETFilename: setFilename,
		SET:         format.Latin1(set),
		RelExp:      format.Latin1(relexp),
		BPAIRel:     format.Latin1(bpaiRel),
		BPACRel:     format.Latin1(bpacRel),
		Summary:     summary,
	}, nil
}
