package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsGeneratedDataset(t *testing.T) {
	t.Parallel()

	nodes := NewGenerator(DefaultShape()).Generate()
	require.NoError(t, Validate(nodes))
}

func TestValidate_Violations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(nodes []Node) []Node
		wantMsg string
	}{
		{
			name:    "empty dataset",
			mutate:  func([]Node) []Node { return nil },
			wantMsg: "dataset is empty",
		},
		{
			name: "root not first",
			mutate: func(nodes []Node) []Node {
				nodes[0], nodes[1] = nodes[1], nodes[0]
				return nodes
			},
			wantMsg: "want root",
		},
		{
			name: "duplicate id",
			mutate: func(nodes []Node) []Node {
				return append(nodes, nodes[3])
			},
			wantMsg: "duplicate id",
		},
		{
			name: "chain not rooted at main",
			mutate: func(nodes []Node) []Node {
				nodes[5].Parent = append(ParentChain{}, nodes[5].Parent...)
				nodes[5].Parent[0] = "other"
				return nodes
			},
			wantMsg: "level-1 entry",
		},
		{
			name: "last entry not self-referential",
			mutate: func(nodes []Node) []Node {
				nodes[5].Parent = append(ParentChain{}, nodes[5].Parent...)
				nodes[5].Parent[len(nodes[5].Parent)-1] = "someone-else"
				return nodes
			},
			wantMsg: "own id",
		},
		{
			name: "ancestor emitted after descendant",
			mutate: func(nodes []Node) []Node {
				// Move a leaf ahead of its level-5 parent.
				nodes[4], nodes[5] = nodes[5], nodes[4]
				return nodes
			},
			wantMsg: "not emitted before",
		},
		{
			name: "depth beyond the deepest level",
			mutate: func(nodes []Node) []Node {
				leaf := nodes[5]
				leaf.ID = leaf.ID + ".1"
				leaf.Parent = append(append(ParentChain{}, leaf.Parent...), leaf.ID)
				return append(nodes, leaf)
			},
			wantMsg: "depth",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			nodes := tc.mutate(NewGenerator(DefaultShape()).Generate())
			err := Validate(nodes)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}
