// mkbatch writes small synthetic production batches in the Parquet shape the
// generator reads. Useful for manual runs and for refreshing testdata.
// Usage: go run ./cmd/mkbatch --out testdata --bpai 25 --bpac 12
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/msaude/bpagen/internal/model"
)

var procedures = []string{
	"0301010048", "0301010072", "0214010058", "0301040079", "0301080232",
}

var professionals = []struct{ cns, cbo string }{
	{"704004079262001", "225142"},
	{"700501926845056", "225125"},
	{"701002331788130", "223905"},
}

func main() {
	outDir := flag.String("out", "testdata", "output directory")
	nBPAI := flag.Int("bpai", 25, "number of individualized rows")
	nBPAC := flag.Int("bpac", 12, "number of consolidated rows")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}

	if err := writeParquet(filepath.Join(*outDir, "bpai.parquet"), makeBPAI(*nBPAI)); err != nil {
		fmt.Fprintf(os.Stderr, "write bpai: %v\n", err)
		os.Exit(1)
	}
	if err := writeParquet(filepath.Join(*outDir, "bpac.parquet"), makeBPAC(*nBPAC)); err != nil {
		fmt.Fprintf(os.Stderr, "write bpac: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d BPA-I and %d BPA-C rows to %s\n", *nBPAI, *nBPAC, *outDir)
}

// makeBPAI builds deterministic individualized rows cycling through the
// sample professionals and procedures.
func makeBPAI(n int) []model.BPAIRow {
	rows := make([]model.BPAIRow, 0, n)
	for i := 0; i < n; i++ {
		prof := professionals[i%len(professionals)]
		raca := "01"
		rows = append(rows, model.BPAIRow{
			CNSPaciente:     fmt.Sprintf("7005019268%05d", i),
			NomePaciente:    fmt.Sprintf("PACIENTE DEMONSTRACAO %03d", i),
			DataNascimento:  fmt.Sprintf("19%02d-03-%02d", 50+i%40, 1+i%28),
			DataAtendimento: fmt.Sprintf("2025-11-%02d", 1+i%28),
			Sexo:            []string{"M", "F"}[i%2],
			Raca:            &raca,
			CNSProfissional: prof.cns,
			CBO:             prof.cbo,
			Procedimento:    procedures[i%len(procedures)],
			Quantidade:      int32(1 + i%3),
		})
	}
	return rows
}

// makeBPAC builds consolidated rows, one per (cbo, procedure, age) tuple.
func makeBPAC(n int) []model.BPACRow {
	rows := make([]model.BPACRow, 0, n)
	for i := 0; i < n; i++ {
		prof := professionals[i%len(professionals)]
		rows = append(rows, model.BPACRow{
			CBO:          prof.cbo,
			Procedimento: procedures[i%len(procedures)],
			Idade:        int32(10 + 5*(i%10)),
			Quantidade:   int32(1 + i%7),
		})
	}
	return rows
}

func writeParquet[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := goparquet.NewGenericWriter[T](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
