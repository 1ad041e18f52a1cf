package schema

// PairingTable represents the 'pairing' table
type PairingTable struct {
	Table      string
	ID         string
	Basis      string
	PaintingID string
	PoemID     string
}

// Pairing is the schema definition for pairing
var Pairing = PairingTable{
	Table:      "pairing",
	ID:         "id",
	Basis:      "basis",
	PaintingID: "painting_id",
	PoemID:     "poem_id",
}

func (t PairingTable) Columns() []string {
	return []string{t.ID, t.Basis, t.PaintingID, t.PoemID}
}
