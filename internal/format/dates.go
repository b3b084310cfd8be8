package format

import (
	"strings"
	"time"
)

// Date shapes accepted from upstream records, tried in order.
var dateLayouts = []string{
	"20060102",
	"2006-01-02",
	"02/01/2006",
	"02.01.2006",
}

const blankDate = "        " // unknown date: 8 spaces, reader treats as blank

// Date reshapes a record date into YYYYMMDD. Unrecognized or impossible
// dates (e.g. 31/02) come back as 8 spaces; this never fails.
func Date(raw string) string {
	t, ok := parseDate(raw)
	if !ok {
		return blankDate
	}
	return t.Format("20060102")
}

// DateDisplay renders a record date as DD/MM/YYYY for reports.
// Blank or unparseable input produces the empty 10-char mask.
func DateDisplay(raw string) string {
	t, ok := parseDate(raw)
	if !ok {
		return "  /  /    "
	}
	return t.Format("02/01/2006")
}

func parseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Portuguese month abbreviations indexed by month number.
var monthAbbrev = map[string]string{
	"01": "JAN", "02": "FEV", "03": "MAR", "04": "ABR",
	"05": "MAI", "06": "JUN", "07": "JUL", "08": "AGO",
	"09": "SET", "10": "OUT", "11": "NOV", "12": "DEZ",
}

// MonthAbbrev returns the 3-letter Portuguese abbreviation for the month of a
// YYYYMM competence, or empty for malformed input.
func MonthAbbrev(competencia string) string {
	if len(competencia) != 6 {
		return ""
	}
	return monthAbbrev[competencia[4:]]
}

// CompetenceDisplay renders a YYYYMM competence as MMM/YYYY.
func CompetenceDisplay(competencia string) string {
	abbr := MonthAbbrev(competencia)
	if abbr == "" {
		return competencia
	}
	return abbr + "/" + competencia[:4]
}

// Age computes completed years between two YYYYMMDD dates, clamped to
// [0, 999]. Any invalid input yields 0.
func Age(birth, reference string) int {
	b, ok := parseDate(birth)
	if !ok {
		return 0
	}
	r, ok := parseDate(reference)
	if !ok {
		return 0
	}
	years := r.Year() - b.Year()
	if r.Month() < b.Month() || (r.Month() == b.Month() && r.Day() < b.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	if years > 999 {
		return 999
	}
	return years
}
