package blissary

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/bliss/pkg/core"
)

// rawEntry is one dataset row as shipped. json.Number tolerates the id
// arriving as either a bare number or a quoted string.
type rawEntry struct {
	ID          json.Number `json:"id"`
	Description string      `json:"description"`
}

// decodeEntries parses the dataset stream, normalizing ids to integers and
// preserving source order. Any malformation fails the whole load; partial
// indexes would silently resolve wrong.
func decodeEntries(r io.Reader) ([]core.GlossEntry, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw []rawEntry
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrLoad, err)
	}

	entries := make([]core.GlossEntry, 0, len(raw))
	for i, re := range raw {
		id, err := strconv.Atoi(re.ID.String())
		if err != nil || id < 0 {
			return nil, fmt.Errorf("%w: entry %d has invalid id %q", core.ErrLoad, i, re.ID.String())
		}
		entries = append(entries, core.GlossEntry{ID: id, Description: re.Description})
	}
	return entries, nil
}
