package model

import "time"

// RunSummary captures metrics from a single generation run.
type RunSummary struct {
	RunID          string
	CNES           string
	Competencia    string
	BPAICount      int
	BPACCount      int
	TotalRegistros int
	TotalBPAs      int
	CampoControle  string
	SETFilename    string
	DurationPlan   time.Duration
	DurationWrite  time.Duration
	DurationReport time.Duration
	DurationTotal  time.Duration
}

// StatsMap renders the summary in the map shape the callers expose.
func (s *RunSummary) StatsMap() map[string]any {
	return map[string]any{
		"total_registros": s.TotalRegistros,
		"total_bpas":      s.TotalBPAs,
		"bpai_count":      s.BPAICount,
		"bpac_count":      s.BPACCount,
		"campo_controle":  s.CampoControle,
		"competencia":     s.Competencia,
		"cnes":            s.CNES,
	}
}
