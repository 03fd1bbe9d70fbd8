package fling

// CollectParticipants walks the subtree rooted at root once, depth first, and
// returns its participants keyed by tag. It does not descend into subtrees
// with FlightsDisabled, into participants, or into boundaries other than root
// itself. Two participants sharing a tag yield a *DuplicateTagError.
//
// Each participant found records the id of its owning boundary (the nearest
// boundary on the walk, root included).
func CollectParticipants(root *Node) (map[any]*Fling, error) {
	out := make(map[any]*Fling)
	var owner uint32
	if root.boundary != nil {
		owner = root.ID
	}
	if err := collect(root, root, owner, out); err != nil {
		return nil, err
	}
	return out, nil
}

func collect(n, root *Node, owner uint32, out map[any]*Fling) error {
	if n.FlightsDisabled {
		return nil
	}
	switch n.Kind {
	case NodeKindBoundary:
		if n != root {
			return nil
		}
	case NodeKindFling:
		f := n.fling
		if prev, ok := out[f.Tag]; ok {
			return &DuplicateTagError{Tag: f.Tag, First: prev.node, Second: n}
		}
		f.boundaryID = owner
		out[f.Tag] = f
		return nil
	}
	for _, c := range n.children {
		if err := collect(c, root, owner, out); err != nil {
			return err
		}
	}
	return nil
}

// findParticipant is the broadened lookup: the first participant tagged tag
// in root's subtree, crossing nested boundaries but skipping exclude and
// disabled subtrees. The scope stack tracks the owning boundary so the
// result carries the right boundary id.
func findParticipant(root *Node, tag any, exclude *Node) *Fling {
	type frame struct {
		n     *Node
		owner uint32
	}
	stack := []frame{{n: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := top.n
		if n == exclude || n.FlightsDisabled {
			continue
		}
		owner := top.owner
		switch n.Kind {
		case NodeKindBoundary:
			owner = n.ID
		case NodeKindFling:
			if n.fling.Tag == tag {
				n.fling.boundaryID = owner
				return n.fling
			}
			continue
		}
		// Push in reverse so children pop in order.
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{n: n.children[i], owner: owner})
		}
	}
	return nil
}
