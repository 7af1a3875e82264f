package hierarchy

import (
	"github.com/cockroachdb/errors"
)

// Validate re-checks the structural invariants of a generated sequence:
// the root record comes first, ids are pairwise distinct, every parent
// chain starts at the root and ends with the node's own id, and every
// ancestor entry names a record emitted earlier in the sequence. It returns
// an error describing the first violation found, or nil.
func Validate(nodes []Node) error {
	if len(nodes) == 0 {
		return errors.New("dataset is empty")
	}
	if nodes[0].ID != RootID {
		return errors.Newf("first record has id %q, want root %q", nodes[0].ID, RootID)
	}

	seen := make(map[string]bool, len(nodes))
	for i, n := range nodes {
		if seen[n.ID] {
			return errors.Newf("record %d: duplicate id %q", i, n.ID)
		}

		d := n.Depth()
		if d < 1 || d > MaxDepth {
			return errors.Newf("record %d (%s): depth %d outside 1..%d", i, n.ID, d, MaxDepth)
		}
		if n.Parent.At(1) != RootID {
			return errors.Newf("record %d (%s): level-1 entry is %q, want %q", i, n.ID, n.Parent.At(1), RootID)
		}
		if self := n.Parent.Self(); self != n.ID {
			return errors.Newf("record %d (%s): level-%d entry is %q, want the node's own id", i, n.ID, d, self)
		}
		for level := 1; level < d; level++ {
			if ancestor := n.Parent.At(level); !seen[ancestor] {
				return errors.Newf("record %d (%s): level-%d ancestor %q was not emitted before it", i, n.ID, level, ancestor)
			}
		}

		seen[n.ID] = true
	}
	return nil
}
