package bancogo

import (
	"strings"
)

// Report walks a transaction history on demand, in insertion order, without
// copying it. An optional kind filter skips non-matching entries as the
// consumer advances; nothing is materialized ahead of the consumer. Like a
// Cursor it is single-pass and assumes no concurrent mutation.
type Report struct {
	history []Transaction
	kind    string
	idx     int
}

// NewReport builds a report over history. An empty kind yields every
// transaction; otherwise kind is matched case-insensitively against the
// transaction kind name, so free-text input such as "deposit" works.
func NewReport(history []Transaction, kind string) *Report {
	return &Report{history: history, kind: kind}
}

func (r *Report) Next() (Transaction, bool) {
	for r.idx < len(r.history) {
		t := r.history[r.idx]
		r.idx++
		if r.kind == "" || strings.EqualFold(string(t.Kind), r.kind) {
			return t, true
		}
	}
	return Transaction{}, false
}
