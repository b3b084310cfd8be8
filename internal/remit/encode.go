package remit

import (
	"strings"

	"github.com/msaude/bpagen/internal/config"
	"github.com/msaude/bpagen/internal/fixedwidth"
	"github.com/msaude/bpagen/internal/format"
	"github.com/msaude/bpagen/internal/model"
)

// Record widths of layout D04.10.
const (
	HeaderLineWidth = 142
	BPACLineWidth   = 46
	BPAILineWidth   = 379
)

// EncodeHeader emits the type-01 control header.
func EncodeHeader(estab *config.Establishment, totals Totals) (string, error) {
	return fixedwidth.NewLine(HeaderLineWidth).
		Literal("01").
		Literal("#BPA#").
		Left(estab.Competencia, 6, '0').
		Int(totals.Registros, 6).
		Int(totals.BPAs, 6).
		Literal(totals.CampoControle).
		Spaces(52).
		Zeros(14).
		Spaces(41).
		Literal(config.LayoutVersion).
		Build()
}

// EncodeBPACLine emits one type-02 consolidated production line.
// Blank record-level CNES and competence fall back to the establishment.
func EncodeBPACLine(estab *config.Establishment, p model.PlannedBPAC) (string, error) {
	cnes := p.CNES
	if strings.TrimSpace(cnes) == "" {
		cnes = estab.CNES
	}
	cmp := p.Competencia
	if strings.TrimSpace(cmp) == "" {
		cmp = estab.Competencia
	}
	return fixedwidth.NewLine(BPACLineWidth).
		Literal("02").
		Left(cnes, 7, '0').
		Left(cmp, 6, '0').
		Left(p.CBO, 6, '0').
		Int(p.Folha, 3).
		Int(p.Seq, 2).
		Left(p.Procedimento, 10, '0').
		Int(p.Idade, 3).
		Int(p.Quantidade, 4).
		Literal("BPA").
		Build()
}

// EncodeBPAILine emits one type-03 individualized encounter line. All text
// routes through the sanitizer before the width-fixed slots; dates degrade to
// blanks and the age slot derives from birth and encounter dates.
func EncodeBPAILine(estab *config.Establishment, p model.PlannedBPAI) (string, error) {
	ibge := p.IBGEMunicipio
	if strings.TrimSpace(ibge) == "" {
		ibge = estab.IBGEMunicipio
	}
	phone := ""
	if strings.TrimSpace(p.DDD+p.Telefone) != "" {
		phone = p.DDD + p.Telefone
	}
	age := format.Age(p.DataNascimento, p.DataAtendimento)

	return fixedwidth.NewLine(BPAILineWidth).
		Literal("03").
		Left(estab.CNES, 7, '0').
		Left(estab.Competencia, 6, '0').
		Left(p.CBO, 6, '0').
		Right(p.CNSPaciente, 15, ' ').
		Left(format.Date(p.DataAtendimento), 8, '0').
		Int(p.Folha, 3).
		Int(p.Seq, 2).
		Left(p.Procedimento, 10, '0').
		Right(p.CNSProfissional, 15, ' ').
		Right(p.Sexo, 1, ' ').
		Left(ibge, 6, '0').
		Right(format.UpperSanitize(p.CID), 4, ' ').
		Int(age, 3).
		Int(p.Quantidade, 6).
		Left(p.CaraterAtend, 2, '0').
		Right(p.NumAutorizacao, 13, ' ').
		Literal("BPA").
		Right(format.UpperSanitize(p.NomePaciente), 30, ' ').
		Left(format.Date(p.DataNascimento), 8, '0').
		Left(p.Raca, 2, '0').
		Right(p.Etnia, 4, ' ').
		Left(p.Nacionalidade, 3, '0').
		Spaces(34).
		Left(p.CEP, 8, '0').
		Left(p.CodLogradouro, 3, '0').
		Right(format.UpperSanitize(p.Logradouro), 30, ' ').
		Right(format.UpperSanitize(p.Complemento), 10, ' ').
		Right(p.Numero, 5, ' ').
		Right(format.UpperSanitize(p.Bairro), 30, ' ').
		Right(phone, 11, ' ').
		Spaces(89).
		Build()
}
