package hierarchy

import (
	"fmt"
	"strconv"
)

// nameBase offsets the global leaf counter in leaf names.
const nameBase = 1000000

// Shape fixes the branching scheme of the synthetic hierarchy.
type Shape struct {
	// Branches is the level-2 fan-out directly under the root.
	Branches int
	// Fanout is the fan-out at levels 3 through 5.
	Fanout int
	// LeafFanout is the number of leaves under each level-5 node.
	LeafFanout int
	// LeavesPerBranch is the per-branch emission target. The walk checks it
	// at the top of every loop level and abandons the branch's remaining
	// siblings at that and all enclosing levels once it is reached.
	LeavesPerBranch int
}

// DefaultShape returns the fixed production constants: 4 branches, 4-way
// intermediate fan-out, 2-way leaf fan-out, 500 leaves per branch. With
// these constants a branch's full capacity is 4*4*4*2 = 128 leaves, so the
// per-branch target never interrupts the walk and every subtree is realized
// completely.
func DefaultShape() Shape {
	return Shape{Branches: 4, Fanout: 4, LeafFanout: 2, LeavesPerBranch: 500}
}

// Generator enumerates the hierarchy for one Shape. Construct with
// NewGenerator; the zero value has no shape to walk.
type Generator struct {
	shape Shape

	// seen holds every intermediate id emitted so far, across all branches.
	// Intermediate ids embed their branch index, so entries can never
	// collide between branches; one set keeps the dedupe in one place.
	seen map[string]bool
	// counter numbers leaves globally across the whole run. It is distinct
	// from the per-branch cap counter and is never reset between branches.
	counter int
	nodes   []Node
}

// NewGenerator returns a Generator for the given shape.
func NewGenerator(shape Shape) *Generator {
	return &Generator{shape: shape}
}

// Generate walks the branching scheme once and returns every node in
// emission order, root first. The walk is fully deterministic; calling
// Generate again restarts it from scratch and yields the same sequence.
func (g *Generator) Generate() []Node {
	g.seen = make(map[string]bool)
	g.counter = 0
	g.nodes = nil

	g.emit(Node{
		ID:          RootID,
		Name:        "Main Node",
		Description: "Root of the hierarchy",
		Parent:      ParentChain{RootID},
	})

	for branch := 1; branch <= g.shape.Branches; branch++ {
		g.walkBranch(branch)
	}
	return g.nodes
}

// walkBranch emits the branch node and traverses its level-3 through
// level-6 descendants in strict nested lexicographic order, stopping early
// once the branch's leaf target is reached.
func (g *Generator) walkBranch(branch int) {
	branchID := strconv.Itoa(branch)
	g.emitIntermediate(Node{
		ID:          branchID,
		Name:        fmt.Sprintf("Branch %d", branch),
		Description: fmt.Sprintf("Branch %d root", branch),
		Parent:      ParentChain{RootID, branchID},
	})

	target := g.shape.LeavesPerBranch
	count := 0

	for l3 := 1; l3 <= g.shape.Fanout && count < target; l3++ {
		id3 := branchID + "." + strconv.Itoa(l3)
		g.emitIntermediate(intermediate(id3, ParentChain{RootID, branchID, id3}))

		for l4 := 1; l4 <= g.shape.Fanout && count < target; l4++ {
			id4 := id3 + "." + strconv.Itoa(l4)
			g.emitIntermediate(intermediate(id4, ParentChain{RootID, branchID, id3, id4}))

			for l5 := 1; l5 <= g.shape.Fanout && count < target; l5++ {
				id5 := id4 + "." + strconv.Itoa(l5)
				g.emitIntermediate(intermediate(id5, ParentChain{RootID, branchID, id3, id4, id5}))

				for l6 := 1; l6 <= g.shape.LeafFanout && count < target; l6++ {
					id6 := id5 + "." + strconv.Itoa(l6)
					g.counter++
					g.emit(Node{
						ID:          id6,
						Name:        fmt.Sprintf("name-%d", nameBase+g.counter),
						Description: fmt.Sprintf("Description for %s", id6),
						Parent:      ParentChain{RootID, branchID, id3, id4, id5, id6},
					})
					count++
				}
			}
		}
	}
}

// emit appends a record unconditionally. Leaves always go through here:
// their ids are unique by construction and are never deduplicated.
func (g *Generator) emit(n Node) {
	g.nodes = append(g.nodes, n)
}

// emitIntermediate appends a record the first time its id is reached and
// drops revisits.
func (g *Generator) emitIntermediate(n Node) {
	if g.seen[n.ID] {
		return
	}
	g.seen[n.ID] = true
	g.emit(n)
}

// intermediate builds the record for a level-3 through level-5 node, whose
// name and description both derive from the dotted id.
func intermediate(id string, chain ParentChain) Node {
	return Node{
		ID:          id,
		Name:        "Node " + id,
		Description: "Intermediate node " + id,
		Parent:      chain,
	}
}
