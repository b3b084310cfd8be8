package model

// Validade carries the upstream per-field validation flags of a BPA-I record.
// '0' (or blank, for records that never went through validation) means clean.
type Validade struct {
	PA  string
	CBO string
	CA  string
	IDA string
	QT  string
	ER  string
	MUN string
	CID string
}

// Clean reports whether every flag is unset or '0'.
func (v Validade) Clean() bool {
	for _, f := range []string{v.PA, v.CBO, v.CA, v.IDA, v.QT, v.ER, v.MUN, v.CID} {
		if f != "" && f != "0" {
			return false
		}
	}
	return true
}

// BPAIRecord is one individualized patient-procedure encounter.
// Dates are kept in whatever shape the upstream handed over; the formatters
// reshape them at emission time. Missing optional fields stay empty.
type BPAIRecord struct {
	CNSPaciente     string
	NomePaciente    string
	DataNascimento  string
	DataAtendimento string
	Sexo            string
	Raca            string
	Etnia           string
	Nacionalidade   string
	IBGEMunicipio   string
	CID             string

	CNSProfissional string
	CBO             string
	Procedimento    string
	Quantidade      int
	CaraterAtend    string
	NumAutorizacao  string

	CEP           string
	CodLogradouro string
	Logradouro    string
	Complemento   string
	Numero        string
	Bairro        string
	DDD           string
	Telefone      string

	Validade Validade
}

// BPACRecord is one consolidated production count, already aggregated by the
// upstream on (CNES, competence, CBO, procedure, age).
type BPACRecord struct {
	CNES         string
	Competencia  string
	CBO          string
	Procedimento string
	Idade        int
	Quantidade   int
}

// PlannedBPAI is a BPA-I record enriched with its sheet/sequence placement.
type PlannedBPAI struct {
	BPAIRecord
	Folha int
	Seq   int
}

// PlannedBPAC is a BPA-C record enriched with its sheet/sequence placement.
type PlannedBPAC struct {
	BPACRecord
	Folha int
	Seq   int
}
