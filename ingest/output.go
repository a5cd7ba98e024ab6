package ingest

import (
	"fmt"
	"io"
	"sort"
)

// WriteAllocation writes one "<outputId>,<count>\n" line per non-zero
// allocation entry, sorted ascending by outputId, with no header.
func WriteAllocation(w io.Writer, allocation map[string]int) error {
	ids := make([]string, 0, len(allocation))
	for id, count := range allocation {
		if count > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "%s,%d\n", id, allocation[id]); err != nil {
			return fmt.Errorf("ingest: writing allocation line for %s: %w", id, err)
		}
	}
	return nil
}
