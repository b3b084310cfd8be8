package remit

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/msaude/bpagen/internal/logging"
	"github.com/msaude/bpagen/internal/model"
	"github.com/msaude/bpagen/internal/sigtap"
)

var testNow = time.Date(2025, 12, 5, 10, 0, 0, 0, time.UTC)

func TestGenerate_EmptyRun(t *testing.T) {
	b, err := Generate(logging.New(io.Discard, "json"), Input{Estab: testEstab(), Now: testNow})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	set := string(b.SET)
	if len(set) != HeaderLineWidth || strings.Contains(set, "\n") {
		t.Errorf("empty SET must be a single header line, got %d bytes", len(set))
	}
	if !strings.HasPrefix(set, "01#BPA#2025110000000000000000") {
		t.Errorf("SET prefix = %q", set[:29])
	}
	if b.Summary.CampoControle != "0000" {
		t.Errorf("control = %q", b.Summary.CampoControle)
	}
	if b.SETFilename != "PACAPSAD.SET" {
		t.Errorf("filename = %q", b.SETFilename)
	}
	for name, artifact := range map[string][]byte{"RELEXP": b.RelExp, "BPAI_REL": b.BPAIRel, "BPAC_REL": b.BPACRel} {
		if len(artifact) == 0 {
			t.Errorf("%s must not be empty on a successful empty run", name)
		}
	}
}

func TestGenerate_SingleBPAI(t *testing.T) {
	in := Input{
		Estab: testEstab(),
		BPAI: []model.BPAIRecord{{
			CNSPaciente:     "700501926845056",
			NomePaciente:    "JOSE DA SILVA",
			DataNascimento:  "1976-03-03",
			DataAtendimento: "2025-11-21",
			Sexo:            "M",
			Raca:            "01",
			CNSProfissional: "704004079262001",
			CBO:             "225142",
			Procedimento:    "0214010058",
			Quantidade:      1,
		}},
		Resolver: sigtap.Static{"0214010058": 100},
		Now:      testNow,
	}
	b, err := Generate(logging.New(io.Discard, "json"), in)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	lines := strings.Split(string(b.SET), "\n")
	if len(lines) != 2 {
		t.Fatalf("SET has %d lines, want 2", len(lines))
	}
	body := lines[1]
	if len(body) != BPAILineWidth {
		t.Errorf("body line is %d bytes", len(body))
	}
	if body[44:47] != "001" || body[47:49] != "01" {
		t.Errorf("placement slots = %q %q", body[44:47], body[47:49])
	}
	if body[85:88] != "049" {
		t.Errorf("age slot = %q", body[85:88])
	}
	if body[75:81] != "172100" {
		t.Errorf("ibge fallback slot = %q", body[75:81])
	}
	if b.Summary.TotalRegistros != 1 || b.Summary.TotalBPAs != 1 || b.Summary.CampoControle != "0010" {
		t.Errorf("summary = %+v", b.Summary)
	}
	if !strings.Contains(string(b.BPAIRel), "1,00") {
		t.Error("listing must carry the resolved previa 1,00")
	}
}

func TestGenerate_UnknownProcedureValue(t *testing.T) {
	in := Input{
		Estab: testEstab(),
		BPAI: []model.BPAIRecord{{
			CNSPaciente:     "700501926845056",
			NomePaciente:    "JOSE DA SILVA",
			DataNascimento:  "1976-03-03",
			DataAtendimento: "2025-11-21",
			Sexo:            "M",
			CNSProfissional: "704004079262001",
			CBO:             "225142",
			Procedimento:    "9999999999",
			Quantidade:      4,
		}},
		Resolver: sigtap.Static{},
		Now:      testNow,
	}
	b, err := Generate(logging.New(io.Discard, "json"), in)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if b.Summary.TotalRegistros != 1 {
		t.Error("record with unknown value must still be emitted")
	}
	if !strings.Contains(string(b.BPAIRel), " 0,00") {
		t.Error("listing monetary slot must read 0,00 for unknown procedures")
	}
}

func TestGenerate_MixedOrdering(t *testing.T) {
	in := Input{
		Estab: testEstab(),
		BPAC: []model.BPACRecord{
			bpacFor("225125", "0301010072", 30, 5),
			bpacFor("225125", "0301010048", 45, 3),
			bpacFor("223905", "0301010030", 12, 1),
		},
		BPAI: []model.BPAIRecord{
			bpaiFor("704004079262001", "0214010058", "2025-11-21"),
			bpaiFor("704004079262001", "0214010058", "2025-11-22"),
		},
		Now: testNow,
	}
	b, err := Generate(logging.New(io.Discard, "json"), in)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	lines := strings.Split(string(b.SET), "\n")
	types := make([]string, len(lines))
	for i, l := range lines {
		types[i] = l[:2]
	}
	if strings.Join(types, " ") != "01 02 02 02 03 03" {
		t.Errorf("record type order = %v", types)
	}
}

func TestGenerate_InvalidConfig(t *testing.T) {
	estab := testEstab()
	estab.CNES = "bad"
	_, err := Generate(logging.New(io.Discard, "json"), Input{Estab: estab})
	if err == nil {
		t.Fatal("expected config error")
	}
	var re *RunError
	if !errors.As(err, &re) || re.Kind != KindConfigInvalid {
		t.Errorf("error = %v, want RunError kind %s", err, KindConfigInvalid)
	}
	_, err = Generate(logging.New(io.Discard, "json"), Input{})
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}

// Splitting a professional's records across two runs renumbers their sheets,
// so the concatenation of two runs only matches a combined run when the split
// preserves professional grouping.
func TestGenerate_SplitRunsBreakGrouping(t *testing.T) {
	r1 := bpaiFor("704004079262001", "0214010058", "2025-11-21")
	r2 := bpaiFor("704004079262001", "0214010058", "2025-11-22")

	combined, err := Generate(logging.New(io.Discard, "json"), Input{Estab: testEstab(), BPAI: []model.BPAIRecord{r1, r2}, Now: testNow})
	if err != nil {
		t.Fatal(err)
	}
	first, err := Generate(logging.New(io.Discard, "json"), Input{Estab: testEstab(), BPAI: []model.BPAIRecord{r1}, Now: testNow})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Generate(logging.New(io.Discard, "json"), Input{Estab: testEstab(), BPAI: []model.BPAIRecord{r2}, Now: testNow})
	if err != nil {
		t.Fatal(err)
	}

	combinedBody := strings.SplitN(string(combined.SET), "\n", 2)[1]
	firstBody := strings.SplitN(string(first.SET), "\n", 2)[1]
	secondBody := strings.SplitN(string(second.SET), "\n", 2)[1]
	if combinedBody == firstBody+"\n"+secondBody {
		t.Error("split runs must not concatenate into the combined run; sequence numbering restarts")
	}
}

func TestGenerate_StatsMap(t *testing.T) {
	b, err := Generate(logging.New(io.Discard, "json"), Input{Estab: testEstab(), Now: testNow})
	if err != nil {
		t.Fatal(err)
	}
	stats := b.Stats()
	if stats["competencia"] != "202511" || stats["cnes"] != "6061478" {
		t.Errorf("stats = %v", stats)
	}
	if stats["total_registros"] != 0 || stats["campo_controle"] != "0000" {
		t.Errorf("stats = %v", stats)
	}
}
