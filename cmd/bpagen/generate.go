package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/msaude/bpagen/internal/batchread"
	"github.com/msaude/bpagen/internal/config"
	"github.com/msaude/bpagen/internal/db"
	"github.com/msaude/bpagen/internal/exitcode"
	"github.com/msaude/bpagen/internal/logging"
	"github.com/msaude/bpagen/internal/model"
	"github.com/msaude/bpagen/internal/remit"
	"github.com/msaude/bpagen/internal/sigtap"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the remittance file and its control reports",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&cfg.ConfigPath, "config", "", "Path to establishment YAML (required)")
	f.StringVar(&cfg.BPAIPath, "bpai", "", "Path to individualized batch Parquet")
	f.StringVar(&cfg.BPACPath, "bpac", "", "Path to consolidated batch Parquet")
	f.StringVar(&cfg.OutDir, "out", ".", "Directory that receives the four artifacts")
	_ = generateCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	estab, err := config.LoadFromFile(cfg.ConfigPath)
	if err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(exitcode.UsageError)
	}
	if err := estab.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.ValidationError)
	}

	bpai, bpac, err := readBatches(log)
	if err != nil {
		log.Error().Err(err).Msg("batch read failed")
		os.Exit(exitcode.ReadError)
	}

	resolver, cleanup, err := newResolver(ctx, log, estab)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer cleanup()

	bundle, err := remit.Generate(log, remit.Input{
		Estab:    estab,
		BPAI:     bpai,
		BPAC:     bpac,
		Resolver: resolver,
	})
	if err != nil {
		log.Error().Err(err).Msg("generation failed")
		os.Exit(exitcode.GenerateError)
	}

	if err := writeArtifacts(bundle, cfg.OutDir); err != nil {
		log.Error().Err(err).Msg("artifact write failed")
		os.Exit(exitcode.WriteError)
	}

	fmt.Printf("Remittance complete: %s (%d registros, %d folhas, controle %s)\n",
		bundle.SETFilename, bundle.Summary.TotalRegistros, bundle.Summary.TotalBPAs, bundle.Summary.CampoControle)
	return nil
}

// newResolver picks the catalog-backed resolver when a DSN is configured and
// degrades to zero values otherwise.
func newResolver(ctx context.Context, log zerolog.Logger, estab *config.Establishment) (sigtap.Resolver, func(), error) {
	if cfg.DSN == "" {
		log.Warn().Msg("no catalog configured; previa values will read 0,00")
		return sigtap.Zero{}, func() {}, nil
	}
	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	return sigtap.NewDB(ctx, pool, log, estab.Competencia), pool.Close, nil
}

func readBatches(log zerolog.Logger) ([]model.BPAIRecord, []model.BPACRecord, error) {
	var bpai []model.BPAIRecord
	var bpac []model.BPACRecord

	if cfg.BPAIPath != "" {
		rows, err := readBPAIBatch(cfg.BPAIPath)
		if err != nil {
			return nil, nil, fmt.Errorf("bpa-i batch: %w", err)
		}
		bpai = rows
		log.Info().Int("records", len(bpai)).Str("file", cfg.BPAIPath).Msg("individualized batch read")
	}
	if cfg.BPACPath != "" {
		rows, err := readBPACBatch(cfg.BPACPath)
		if err != nil {
			return nil, nil, fmt.Errorf("bpa-c batch: %w", err)
		}
		bpac = rows
		log.Info().Int("records", len(bpac)).Str("file", cfg.BPACPath).Msg("consolidated batch read")
	}
	return bpai, bpac, nil
}

func readBPAIBatch(path string) ([]model.BPAIRecord, error) {
	r, err := batchread.Open[model.BPAIRow](path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	if err := batchread.ValidateBPAISchema(r.Schema()); err != nil {
		return nil, err
	}

	var out []model.BPAIRecord
	buf := make([]model.BPAIRow, 256)
	for {
		n, readErr := r.Read(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i].ToRecord())
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, readErr
		}
	}
	return out, nil
}

func readBPACBatch(path string) ([]model.BPACRecord, error) {
	r, err := batchread.Open[model.BPACRow](path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	if err := batchread.ValidateBPACSchema(r.Schema()); err != nil {
		return nil, err
	}

	var out []model.BPACRecord
	buf := make([]model.BPACRow, 256)
	for {
		n, readErr := r.Read(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i].ToRecord())
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, readErr
		}
	}
	return out, nil
}

// writeArtifacts persists the four bundle artifacts; nothing is written until
// the whole bundle exists in memory.
func writeArtifacts(bundle *remit.Bundle, dir string) error {
	files := []struct {
		name    string
		content []byte
	}{
		{bundle.SETFilename, bundle.SET},
		{"RELEXP.PRN", bundle.RelExp},
		{"BPAI_REL.TXT", bundle.BPAIRel},
		{"BPAC_REL.TXT", bundle.BPACRel},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.content, 0644); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}
	return nil
}
