package schema

import "strings"

// Tables lists every table the loader may clear, parents before children.
func Tables() []string {
	return []string{Painting.Table, Poem.Table, Pairing.Table}
}

// IsTable reports whether name is one of [Tables].
func IsTable(name string) bool {
	for _, table := range Tables() {
		if table == name {
			return true
		}
	}
	return false
}

// List joins columns for a SELECT or INSERT column list, optionally qualified by alias.
func List(alias string, columns ...string) string {
	if alias == "" {
		return strings.Join(columns, ", ")
	}
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}
