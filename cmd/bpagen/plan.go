package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msaude/bpagen/internal/config"
	"github.com/msaude/bpagen/internal/exitcode"
	"github.com/msaude/bpagen/internal/format"
	"github.com/msaude/bpagen/internal/logging"
	"github.com/msaude/bpagen/internal/remit"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run generation stats (no writes)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.ConfigPath, "config", "", "Path to establishment YAML (required)")
	f.StringVar(&cfg.BPAIPath, "bpai", "", "Path to individualized batch Parquet")
	f.StringVar(&cfg.BPACPath, "bpac", "", "Path to consolidated batch Parquet")
	_ = planCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

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

	// Full in-memory generation; artifacts are discarded.
	bundle, err := remit.Generate(log, remit.Input{Estab: estab, BPAI: bpai, BPAC: bpac})
	if err != nil {
		log.Error().Err(err).Msg("generation failed")
		os.Exit(exitcode.GenerateError)
	}

	fmt.Println("=== bpagen plan ===")
	fmt.Printf("CNES:            %s\n", estab.CNES)
	fmt.Printf("Competencia:     %s\n", format.CompetenceDisplay(estab.Competencia))
	fmt.Printf("BPA-I records:   %d\n", bundle.Summary.BPAICount)
	fmt.Printf("BPA-C records:   %d\n", bundle.Summary.BPACCount)
	fmt.Printf("Registros:       %d\n", bundle.Summary.TotalRegistros)
	fmt.Printf("Folhas BPA:      %d\n", bundle.Summary.TotalBPAs)
	fmt.Printf("Campo controle:  %s\n", bundle.Summary.CampoControle)
	fmt.Printf("Arquivo:         %s (remessa PA%s.%s)\n",
		bundle.SETFilename, estab.Sigla, format.MonthAbbrev(estab.Competencia))
	return nil
}
