package schema

// PaintingTable represents the 'painting' table
type PaintingTable struct {
	Table    string
	ID       string
	Name     string
	Title    string
	Author   string
	Year     string
	Category string
	InfoURL  string
}

// Painting is the schema definition for painting
var Painting = PaintingTable{
	Table:    "painting",
	ID:       "id",
	Name:     "name",
	Title:    "title",
	Author:   "author",
	Year:     "year",
	Category: "category",
	InfoURL:  "info_url",
}

func (t PaintingTable) Columns() []string {
	return []string{t.ID, t.Name, t.Title, t.Author, t.Year, t.Category, t.InfoURL}
}
