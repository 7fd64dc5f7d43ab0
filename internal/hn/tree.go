package hn

// treeFrame is one pending node in the iterative DFS walk shared by the
// tree-flattening algorithms below.
type treeFrame[R any] struct {
	ref   R
	depth int
}

// flattenTree performs an iterative preorder DFS shared by all three
// comment-flattening strategies (nested Algolia tree, flat fetched map
// with deletion filtering, and cached-storage map). roots is the initial
// set of node references to visit; resolve looks up the item a reference
// points to (false if it should be skipped entirely); childRefs returns
// the references of an item's children, in display order; convert builds
// the output Comment for a resolved (ref, depth, item) triple.
//
// Pushing children in reverse order before popping reproduces the same
// left-to-right preorder a recursive walk would produce.
func flattenTree[R any, T any](
	roots []R,
	resolve func(R) (T, bool),
	childRefs func(T) []R,
	convert func(ref R, depth int, item T) Comment,
) []Comment {
	out := make([]Comment, 0, len(roots))
	stack := make([]treeFrame[R], 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, treeFrame[R]{ref: roots[i], depth: 0})
	}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		item, ok := resolve(frame.ref)
		if !ok {
			continue
		}
		children := childRefs(item)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, treeFrame[R]{ref: children[i], depth: frame.depth + 1})
		}
		out = append(out, convert(frame.ref, frame.depth, item))
	}
	return out
}
