package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type cliConfig struct {
	DSN        string
	LogFormat  string
	ConfigPath string
	BPAIPath   string
	BPACPath   string
	OutDir     string
}

var cfg cliConfig

var rootCmd = &cobra.Command{
	Use:   "bpagen",
	Short: "BPA magnetic remittance generator",
	Long:  "Reads monthly BPA production batches and emits the SIA/DATASUS magnetic remittance file plus its control reports.",
}

func init() {
	_ = godotenv.Load()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string for the SIGTAP catalog (or set DATABASE_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
