package palette

import "github.com/aretw0/bliss/pkg/core"

// Cell is one entry of a built palette, ready for the rendering layer.
type Cell struct {
	Type    string      `json:"type"`
	Options CellOptions `json:"options"`
}

// CellOptions carries the symbol and grid placement of a cell. Spans are
// always 1; starts are the layout offset plus the cell's grid position.
type CellOptions struct {
	Label       string             `json:"label"`
	BciAvID     core.TokenSequence `json:"bciAvId"`
	RowStart    int                `json:"rowStart"`
	RowSpan     int                `json:"rowSpan"`
	ColumnStart int                `json:"columnStart"`
	ColumnSpan  int                `json:"columnSpan"`
}

// Palette is the in-memory palette-file structure. Cells are keyed by a
// label-plus-uuid key: collision-free, not meaningful data.
type Palette struct {
	Name  string          `json:"name"`
	Cells map[string]Cell `json:"cells"`
}

// NotFoundEncoding is the sentinel token sequence given to cells whose
// label failed to resolve: the compound rendering "NOT FOUND". A visible,
// greppable marker rather than a null.
var NotFoundEncoding = core.TokenSequence{
	core.Atom(15733), core.Combine(), core.Atom(14133),
	core.Indicator(), core.Atom(9004), core.Combine(), core.Atom(25570),
}

// notFoundSuffix marks unresolved labels in the emitted cell.
const notFoundSuffix = " NOT FOUND"
