package hierarchy

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
)

// MaxDepth is the number of levels in the hierarchy, root included.
const MaxDepth = 6

// RootID is the id of the synthetic root node.
const RootID = "main"

// Node is one record of the generated dataset. Field order matches the
// serialized key order.
type Node struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parent      ParentChain `json:"parent"`
}

// Depth reports the node's level, 1 for the root through MaxDepth for leaves.
func (n Node) Depth() int { return len(n.Parent) }

// IsLeaf reports whether the node sits at the deepest level.
func (n Node) IsLeaf() bool { return len(n.Parent) == MaxDepth }

// ParentChain is a node's ordered ancestor mapping: entry i holds the id of
// the ancestor at level i+1, starting with the root at level 1. The final
// entry repeats the node's own id rather than naming the immediate parent;
// downstream consumers rely on that shape, so it is part of the record
// contract and must survive serialization unchanged.
type ParentChain []string

// levelLabel returns the serialized object key for a 1-based level.
func levelLabel(level int) string { return fmt.Sprintf("level-%d", level) }

// Self returns the entry at the chain's own level, i.e. the owning node's id.
func (p ParentChain) Self() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// At returns the ancestor id at the given 1-based level, or "" when the
// chain does not reach that deep.
func (p ParentChain) At(level int) string {
	if level < 1 || level > len(p) {
		return ""
	}
	return p[level-1]
}

// MarshalJSON serializes the chain as a JSON object whose keys appear in
// level order, "level-1" first. A plain map would leave key order to the
// encoder; the order here is part of the file format.
func (p ParentChain) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		v, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%q:", levelLabel(i+1))
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds the chain from its object form, placing each
// "level-N" entry at its depth. Gaps or duplicate levels surface as errors.
func (p *ParentChain) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	chain := make(ParentChain, len(raw))
	for key, id := range raw {
		var level int
		if _, err := fmt.Sscanf(key, "level-%d", &level); err != nil {
			return errors.Newf("parent key %q is not a level label", key)
		}
		if level < 1 || level > len(raw) {
			return errors.Newf("parent key %q out of range for a chain of %d entries", key, len(raw))
		}
		if chain[level-1] != "" {
			return errors.Newf("duplicate parent entry for level %d", level)
		}
		chain[level-1] = id
	}
	for i, id := range chain {
		if id == "" {
			return errors.Newf("parent chain missing an entry for level %d", i+1)
		}
	}
	*p = chain
	return nil
}
