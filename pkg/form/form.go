package form

import "sort"

// CleanValues maps field names to their normalized, storage-safe values.
// An invalid field maps to the empty string.
type CleanValues map[string]string

// Get returns the clean value for a field, or "" if the field is unknown.
func (cv CleanValues) Get(field string) string {
	return cv[field]
}

// FieldErrors maps field names to a single human-readable error message.
// Absence of a key means the field is valid.
type FieldErrors map[string]string

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

func (fe FieldErrors) Get(field string) string {
	return fe[field]
}

func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

// Fields returns the names of the failed fields in sorted order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
