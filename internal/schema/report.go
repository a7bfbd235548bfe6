package schema

// ErrorKind classifies a non-fatal problem found while compiling records.
type ErrorKind string

const (
	MissingType       ErrorKind = "missing-type"
	TypeInconsistency ErrorKind = "type-inconsistency"
	DuplicateField    ErrorKind = "duplicate-field-definition"
)

// Kinds lists every ErrorKind in report order.
var Kinds = []ErrorKind{MissingType, TypeInconsistency, DuplicateField}

// Report collects kind -> record -> set of fields for a whole run.
// The zero value is ready to use. Records and fields keep first-insertion order.
type Report struct {
	byKind map[ErrorKind]*kindEntry
}

type kindEntry struct {
	records []string
	fields  map[string][]string
	seen    map[string]map[string]bool
}

func NewReport() *Report {
	return &Report{}
}

// Add records one (kind, record, field) entry. Repeats are ignored.
func (r *Report) Add(kind ErrorKind, record, field string) {
	if r.byKind == nil {
		r.byKind = make(map[ErrorKind]*kindEntry)
	}
	e, ok := r.byKind[kind]
	if !ok {
		e = &kindEntry{
			fields: make(map[string][]string),
			seen:   make(map[string]map[string]bool),
		}
		r.byKind[kind] = e
	}
	if _, ok := e.seen[record]; !ok {
		e.seen[record] = make(map[string]bool)
		e.records = append(e.records, record)
	}
	if e.seen[record][field] {
		return
	}
	e.seen[record][field] = true
	e.fields[record] = append(e.fields[record], field)
}

// Has reports whether the entry exists.
func (r *Report) Has(kind ErrorKind, record, field string) bool {
	e, ok := r.byKind[kind]
	if !ok {
		return false
	}
	return e.seen[record][field]
}

// Records returns the records with at least one entry of kind.
func (r *Report) Records(kind ErrorKind) []string {
	if e, ok := r.byKind[kind]; ok {
		return e.records
	}
	return nil
}

// Fields returns the fields recorded for (kind, record).
func (r *Report) Fields(kind ErrorKind, record string) []string {
	if e, ok := r.byKind[kind]; ok {
		return e.fields[record]
	}
	return nil
}

// Len counts all entries across kinds.
func (r *Report) Len() int {
	n := 0
	for _, e := range r.byKind {
		for _, fs := range e.fields {
			n += len(fs)
		}
	}
	return n
}

func (r *Report) Empty() bool {
	return r.Len() == 0
}
