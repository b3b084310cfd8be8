package remit

import (
	"strings"
	"testing"

	"github.com/msaude/bpagen/internal/config"
	"github.com/msaude/bpagen/internal/model"
)

func testEstab() *config.Establishment {
	return &config.Establishment{
		CNES:          "6061478",
		Competencia:   "202511",
		Sigla:         "CAPSAD",
		IBGEMunicipio: "172100",
	}
}

// slot extracts an inclusive 1-based column range, as the layout tables count.
func slot(t *testing.T, line string, from, to int) string {
	t.Helper()
	if to > len(line) {
		t.Fatalf("slot %d-%d beyond line length %d", from, to, len(line))
	}
	return line[from-1 : to]
}

func TestEncodeHeader_Width(t *testing.T) {
	line, err := EncodeHeader(testEstab(), Totals{Registros: 1, BPAs: 1, CampoControle: "0010"})
	if err != nil {
		t.Fatalf("EncodeHeader: %v", err)
	}
	if len(line) != HeaderLineWidth {
		t.Fatalf("header is %d bytes, want %d", len(line), HeaderLineWidth)
	}
	if !strings.HasPrefix(line, "01#BPA#202511000001000001"+"0010") {
		t.Errorf("header prefix = %q", line[:29])
	}
	if !strings.HasSuffix(line, "D04.10") {
		t.Errorf("header must end with version literal, got %q", line[len(line)-6:])
	}
}

func TestEncodeBPACLine(t *testing.T) {
	p := model.PlannedBPAC{
		BPACRecord: model.BPACRecord{CBO: "225125", Procedimento: "0301010072", Idade: 30, Quantidade: 5},
		Folha:      1,
		Seq:        1,
	}
	line, err := EncodeBPACLine(testEstab(), p)
	if err != nil {
		t.Fatalf("EncodeBPACLine: %v", err)
	}
	if len(line) != BPACLineWidth {
		t.Fatalf("line is %d bytes, want %d", len(line), BPACLineWidth)
	}
	if got := slot(t, line, 1, 2); got != "02" {
		t.Errorf("record type = %q", got)
	}
	if got := slot(t, line, 3, 9); got != "6061478" {
		t.Errorf("cnes fallback = %q", got)
	}
	if got := slot(t, line, 10, 15); got != "202511" {
		t.Errorf("competence fallback = %q", got)
	}
	if got := slot(t, line, 22, 24); got != "001" {
		t.Errorf("folha = %q", got)
	}
	if got := slot(t, line, 25, 26); got != "01" {
		t.Errorf("seq = %q", got)
	}
	if got := slot(t, line, 27, 36); got != "0301010072" {
		t.Errorf("procedure = %q", got)
	}
	if got := slot(t, line, 37, 39); got != "030" {
		t.Errorf("age = %q", got)
	}
	if got := slot(t, line, 40, 43); got != "0005" {
		t.Errorf("quantity = %q", got)
	}
	if !strings.HasSuffix(line, "BPA") {
		t.Errorf("line must end with BPA literal, got %q", line[len(line)-3:])
	}
}

func singleBPAI() model.PlannedBPAI {
	return model.PlannedBPAI{
		BPAIRecord: model.BPAIRecord{
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
		},
		Folha: 1,
		Seq:   1,
	}
}

func TestEncodeBPAILine(t *testing.T) {
	line, err := EncodeBPAILine(testEstab(), singleBPAI())
	if err != nil {
		t.Fatalf("EncodeBPAILine: %v", err)
	}
	if len(line) != BPAILineWidth {
		t.Fatalf("line is %d bytes, want %d", len(line), BPAILineWidth)
	}
	if got := slot(t, line, 1, 2); got != "03" {
		t.Errorf("record type = %q", got)
	}
	if got := slot(t, line, 3, 9); got != "6061478" {
		t.Errorf("cnes = %q", got)
	}
	if got := slot(t, line, 22, 36); got != "700501926845056" {
		t.Errorf("patient cns = %q", got)
	}
	if got := slot(t, line, 37, 44); got != "20251121" {
		t.Errorf("encounter date = %q", got)
	}
	if got := slot(t, line, 45, 47); got != "001" {
		t.Errorf("folha = %q", got)
	}
	if got := slot(t, line, 48, 49); got != "01" {
		t.Errorf("seq = %q", got)
	}
	if got := slot(t, line, 76, 81); got != "172100" {
		t.Errorf("ibge fallback = %q", got)
	}
	if got := slot(t, line, 86, 88); got != "049" {
		t.Errorf("age slot = %q", got)
	}
	if got := slot(t, line, 89, 94); got != "000001" {
		t.Errorf("quantity = %q", got)
	}
	if got := slot(t, line, 110, 112); got != "BPA" {
		t.Errorf("origin literal = %q", got)
	}
	if got := slot(t, line, 113, 142); got != "JOSE DA SILVA                 " {
		t.Errorf("patient name = %q", got)
	}
	if got := slot(t, line, 143, 150); got != "19760303" {
		t.Errorf("birth date = %q", got)
	}
	if got := slot(t, line, 291, 379); got != strings.Repeat(" ", 89) {
		t.Errorf("reserved tail not blank")
	}
}

func TestEncodeBPAILine_DegradedFields(t *testing.T) {
	p := singleBPAI()
	p.DataNascimento = "31/02/2025" // impossible date
	p.NomePaciente = "MARÍA APARECIDA DA CONCEIÇÃO SOUSA" // 34 chars before stripping
	line, err := EncodeBPAILine(testEstab(), p)
	if err != nil {
		t.Fatalf("EncodeBPAILine: %v", err)
	}
	if len(line) != BPAILineWidth {
		t.Fatalf("degraded line is %d bytes", len(line))
	}
	if got := slot(t, line, 143, 150); got != "        " {
		t.Errorf("invalid birth date slot = %q, want 8 spaces", got)
	}
	if got := slot(t, line, 86, 88); got != "000" {
		t.Errorf("age from invalid birth = %q, want 000", got)
	}
	if got := slot(t, line, 113, 142); got != "MARIA APARECIDA DA CONCEICAO S" {
		t.Errorf("name truncated after deaccent = %q", got)
	}
}
