package format

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrencyBR renders integer centavos in Brazilian notation: comma decimal
// separator and dot thousands grouping (123456 -> "1.234,56").
func CurrencyBR(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(whole[i : i+3])
	}

	s := fmt.Sprintf("%s,%02d", b.String(), cents%100)
	if neg {
		return "-" + s
	}
	return s
}
