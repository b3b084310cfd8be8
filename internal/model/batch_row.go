package model

// BPAIRow mirrors the Parquet schema of an individualized monthly batch.
// Quantities come in as int32 matching the Parquet representation; optional
// columns are pointers and default to empty in the converted record.
type BPAIRow struct {
	CNSPaciente     string  `parquet:"cns_paciente"`
	NomePaciente    string  `parquet:"nome_paciente"`
	DataNascimento  string  `parquet:"data_nascimento"`
	DataAtendimento string  `parquet:"data_atendimento"`
	Sexo            string  `parquet:"sexo"`
	Raca            *string `parquet:"raca,optional"`
	Etnia           *string `parquet:"etnia,optional"`
	Nacionalidade   *string `parquet:"nacionalidade,optional"`
	IBGEMunicipio   *string `parquet:"ibge_municipio,optional"`
	CID             *string `parquet:"cid,optional"`

	CNSProfissional string  `parquet:"cns_profissional"`
	CBO             string  `parquet:"cbo"`
	Procedimento    string  `parquet:"procedimento"`
	Quantidade      int32   `parquet:"quantidade"`
	CaraterAtend    *string `parquet:"carater_atendimento,optional"`
	NumAutorizacao  *string `parquet:"numero_autorizacao,optional"`

	CEP           *string `parquet:"cep,optional"`
	CodLogradouro *string `parquet:"cod_logradouro,optional"`
	Logradouro    *string `parquet:"logradouro,optional"`
	Complemento   *string `parquet:"complemento,optional"`
	Numero        *string `parquet:"numero,optional"`
	Bairro        *string `parquet:"bairro,optional"`
	DDD           *string `parquet:"ddd,optional"`
	Telefone      *string `parquet:"telefone,optional"`

	FlagPA  *string `parquet:"flag_pa,optional"`
	FlagCBO *string `parquet:"flag_cbo,optional"`
	FlagCA  *string `parquet:"flag_ca,optional"`
	FlagIDA *string `parquet:"flag_ida,optional"`
	FlagQT  *string `parquet:"flag_qt,optional"`
	FlagER  *string `parquet:"flag_er,optional"`
	FlagMUN *string `parquet:"flag_mun,optional"`
	FlagCID *string `parquet:"flag_cid,optional"`
}

// ToRecord converts a batch row into the record shape the codec consumes.
func (r *BPAIRow) ToRecord() BPAIRecord {
	return BPAIRecord{
		CNSPaciente:     r.CNSPaciente,
		NomePaciente:    r.NomePaciente,
		DataNascimento:  r.DataNascimento,
		DataAtendimento: r.DataAtendimento,
		Sexo:            r.Sexo,
		Raca:            deref(r.Raca),
		Etnia:           deref(r.Etnia),
		Nacionalidade:   deref(r.Nacionalidade),
		IBGEMunicipio:   deref(r.IBGEMunicipio),
		CID:             deref(r.CID),
		CNSProfissional: r.CNSProfissional,
		CBO:             r.CBO,
		Procedimento:    r.Procedimento,
		Quantidade:      int(r.Quantidade),
		CaraterAtend:    deref(r.CaraterAtend),
		NumAutorizacao:  deref(r.NumAutorizacao),
		CEP:             deref(r.CEP),
		CodLogradouro:   deref(r.CodLogradouro),
		Logradouro:      deref(r.Logradouro),
		Complemento:     deref(r.Complemento),
		Numero:          deref(r.Numero),
		Bairro:          deref(r.Bairro),
		DDD:             deref(r.DDD),
		Telefone:        deref(r.Telefone),
		Validade: Validade{
			PA:  deref(r.FlagPA),
			CBO: deref(r.FlagCBO),
			CA:  deref(r.FlagCA),
			IDA: deref(r.FlagIDA),
			QT:  deref(r.FlagQT),
			ER:  deref(r.FlagER),
			MUN: deref(r.FlagMUN),
			CID: deref(r.FlagCID),
		},
	}
}

// BPACRow mirrors the Parquet schema of a consolidated monthly batch.
type BPACRow struct {
	CNES         *string `parquet:"cnes,optional"`
	Competencia  *string `parquet:"competencia,optional"`
	CBO          string  `parquet:"cbo"`
	Procedimento string  `parquet:"procedimento"`
	Idade        int32   `parquet:"idade"`
	Quantidade   int32   `parquet:"quantidade"`
}

// ToRecord converts a batch row into the record shape the codec consumes.
func (r *BPACRow) ToRecord() BPACRecord {
	return BPACRecord{
		CNES:         deref(r.CNES),
		Competencia:  deref(r.Competencia),
		CBO:          r.CBO,
		Procedimento: r.Procedimento,
		Idade:        int(r.Idade),
		Quantidade:   int(r.Quantidade),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
