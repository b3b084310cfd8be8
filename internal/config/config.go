package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// LayoutVersion is the SIA/DATASUS magnetic layout implemented by this module.
const LayoutVersion = "D04.10"

var (
	cnesRe  = regexp.MustCompile(`^\d{7}$`)
	cmpRe   = regexp.MustCompile(`^\d{4}(0[1-9]|1[0-2])$`)
	siglaRe = regexp.MustCompile(`^[A-Z0-9_]{1,30}$`)
	ibgeRe  = regexp.MustCompile(`^\d{6}$`)
)

// Establishment is the immutable facility profile for one generation run.
type Establishment struct {
	CNES          string `yaml:"cnes"`
	Competencia   string `yaml:"competencia"` // YYYYMM
	Sigla         string `yaml:"sigla"`
	IBGEMunicipio string `yaml:"ibge_municipio"` // fallback for record-level blanks
}

// LoadFromFile reads an establishment profile from a YAML file.
func LoadFromFile(path string) (*Establishment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var e Establishment
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &e, nil
}

// Validate checks every field against the layout's shape rules.
func (e *Establishment) Validate() error {
	if !cnesRe.MatchString(e.CNES) {
		return fmt.Errorf("cnes must be 7 digits, got %q", e.CNES)
	}
	if !cmpRe.MatchString(e.Competencia) {
		return fmt.Errorf("competencia must be YYYYMM, got %q", e.Competencia)
	}
	if !siglaRe.MatchString(e.Sigla) {
		return fmt.Errorf("sigla must match [A-Z0-9_]{1,30}, got %q", e.Sigla)
	}
	if !ibgeRe.MatchString(e.IBGEMunicipio) {
		return fmt.Errorf("ibge_municipio must be 6 digits, got %q", e.IBGEMunicipio)
	}
	return nil
}

// VersaoBanco is the database-version tag derived from the competence.
func (e *Establishment) VersaoBanco() string {
	return e.Competencia + "a"
}
