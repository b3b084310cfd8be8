package format

// Procedure renders a 10-digit SIGTAP procedure code in its dotted display
// form GG.SS.TT.PPP-D (14 chars). Anything shorter is right-padded to 14 as-is.
func Procedure(code string) string {
	if len(code) != 10 {
		for len(code) < 14 {
			code += " "
		}
		return code[:14]
	}
	return code[0:2] + "." + code[2:4] + "." + code[4:6] + "." + code[6:9] + "-" + code[9:]
}
