package schema

// PoemTable represents the 'poem' table
type PoemTable struct {
	Table  string
	ID     string
	Name   string
	Title  string
	Author string
}

// Poem is the schema definition for poem
var Poem = PoemTable{
	Table:  "poem",
	ID:     "id",
	Name:   "name",
	Title:  "title",
	Author: "author",
}

func (t PoemTable) Columns() []string {
	return []string{t.ID, t.Name, t.Title, t.Author}
}
