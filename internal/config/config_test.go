package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validEstab() Establishment {
	return Establishment{
		CNES:          "6061478",
		Competencia:   "202511",
		Sigla:         "CAPSAD",
		IBGEMunicipio: "172100",
	}
}

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "estab.yaml")
	os.WriteFile(path, []byte("cnes: \"6061478\"\ncompetencia: \"202511\"\nsigla: CAPSAD\nibge_municipio: \"172100\"\n"), 0644)

	e, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if err := e.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if e.CNES != "6061478" || e.Sigla != "CAPSAD" {
		t.Errorf("unexpected establishment: %+v", e)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/estab.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_RejectsBadFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Establishment)
	}{
		{"short cnes", func(e *Establishment) { e.CNES = "606147" }},
		{"alpha cnes", func(e *Establishment) { e.CNES = "60614A8" }},
		{"month 13", func(e *Establishment) { e.Competencia = "202513" }},
		{"month 00", func(e *Establishment) { e.Competencia = "202500" }},
		{"lowercase sigla", func(e *Establishment) { e.Sigla = "capsad" }},
		{"empty sigla", func(e *Establishment) { e.Sigla = "" }},
		{"sigla too long", func(e *Establishment) { e.Sigla = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA" }},
		{"short ibge", func(e *Establishment) { e.IBGEMunicipio = "17210" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := validEstab()
			tc.mutate(&e)
			if err := e.Validate(); err == nil {
				t.Errorf("expected validation error for %+v", e)
			}
		})
	}
}

func TestVersaoBanco(t *testing.T) {
	e := validEstab()
	if got := e.VersaoBanco(); got != "202511a" {
		t.Errorf("VersaoBanco = %q, want 202511a", got)
	}
}
