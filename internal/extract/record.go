package extract

// Record is one output row for a names-list entry. Unmatched entries keep
// empty career fields; rows are never dropped.
type Record struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Political string `json:"political_career" yaml:"political_career"`
	Private   string `json:"private_career" yaml:"private_career"`
}

// NewRecord builds a row from a normalized full name.
func NewRecord(fullName string) Record {
	first, last := SplitName(fullName)
	return Record{FirstName: first, LastName: last}
}
