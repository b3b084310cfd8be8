// Package sigtap resolves ambulatory unit values for procedure codes.
// It is the only place the codec touches the SIGTAP catalog; everything else
// sees the Resolver contract and stays storage-agnostic.
package sigtap

// Resolver answers the unit value of a procedure in integer centavos.
// Unknown codes are a normal condition: zeroed procedures exist in the
// catalog, so lookups report (0, false) and generation carries on.
type Resolver interface {
	UnitValueCents(procedureCode string) (cents int64, known bool)
}

// Zero is the resolver used when no catalog is configured; every code is
// unknown and worth 0.
type Zero struct{}

func (Zero) UnitValueCents(string) (int64, bool) { return 0, false }

// Static resolves from an in-memory table; handy for tests and fixtures.
type Static map[string]int64

func (s Static) UnitValueCents(code string) (int64, bool) {
	v, ok := s[code]
	return v, ok
}

// Memo wraps another resolver with a per-run cache. The cache is never shared
// across runs, so independent generations stay isolated.
type Memo struct {
	next  Resolver
	cache map[string]memoEntry
}

type memoEntry struct {
	cents int64
	known bool
}

// NewMemo builds a memoizing wrapper around next.
func NewMemo(next Resolver) *Memo {
	return &Memo{next: next, cache: make(map[string]memoEntry)}
}

func (m *Memo) UnitValueCents(code string) (int64, bool) {
	if e, ok := m.cache[code]; ok {
		return e.cents, e.known
	}
	cents, known := m.next.UnitValueCents(code)
	m.cache[code] = memoEntry{cents: cents, known: known}
	return cents, known
}
