package batchread

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// Columns every individualized batch must carry.
var requiredBPAI = []string{
	"cns_paciente", "nome_paciente", "data_nascimento", "data_atendimento",
	"sexo", "cns_profissional", "cbo", "procedimento", "quantidade",
}

// Columns every consolidated batch must carry.
var requiredBPAC = []string{"cbo", "procedimento", "idade", "quantidade"}

// ValidateBPAISchema checks that an individualized batch has all required columns.
func ValidateBPAISchema(schema *parquet.Schema) error {
	return requireColumns(schema, requiredBPAI)
}

// ValidateBPACSchema checks that a consolidated batch has all required columns.
func ValidateBPACSchema(schema *parquet.Schema) error {
	return requireColumns(schema, requiredBPAC)
}

func requireColumns(schema *parquet.Schema, required []string) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}
	var missing []string
	for _, col := range required {
		if !columns[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
