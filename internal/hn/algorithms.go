package hn

import (
	"html"
	"strconv"
)

// flattenAlgolia implements Algorithm A: a preorder walk over an Algolia
// batch-tree response. Only children of type "comment" with non-empty
// text survive; each surviving node's Kids are the ids of its own
// surviving children.
func flattenAlgolia(children []algoliaItem) []Comment {
	return flattenTree(
		children,
		func(n algoliaItem) (algoliaItem, bool) {
			if n.Type != "comment" || n.Text == "" {
				return algoliaItem{}, false
			}
			return n, true
		},
		func(n algoliaItem) []algoliaItem {
			return n.Children
		},
		func(_ algoliaItem, depth int, n algoliaItem) Comment {
			return algoliaItemToComment(n, depth)
		},
	)
}

func algoliaItemToComment(n algoliaItem, depth int) Comment {
	id, _ := strconv.ParseInt(n.ID, 10, 64)
	by := n.Author
	if by == "" {
		by = "[deleted]"
	}
	kids := make([]int64, 0, len(n.Children))
	for _, child := range n.Children {
		if child.Type != "comment" || child.Text == "" {
			continue
		}
		childID, err := strconv.ParseInt(child.ID, 10, 64)
		if err != nil {
			continue
		}
		kids = append(kids, childID)
	}
	return Comment{
		ID:    id,
		Text:  html.UnescapeString(n.Text),
		By:    by,
		Time:  n.CreatedAtI,
		Depth: depth,
		Kids:  kids,
	}
}

// flattenFetchedMap implements Algorithm B: DFS from a flat id->item map
// built by the BFS crawl fallback. attempted records every id that was
// tried (successful or not); items present only under ids never attempted
// are retained as "may have more" pointers, while ids that were attempted
// and came back deleted/dead/absent are pruned from their parent's kids.
func flattenFetchedMap(rootKids []int64, byID map[int64]hnItem, attempted map[int64]struct{}) []Comment {
	filtered := make(map[int64]hnItem, len(byID))
	for id, item := range byID {
		kept := make([]int64, 0, len(item.Kids))
		for _, kidID := range item.Kids {
			if _, tried := attempted[kidID]; !tried {
				kept = append(kept, kidID)
				continue
			}
			if _, present := byID[kidID]; present {
				kept = append(kept, kidID)
			}
		}
		item.Kids = kept
		filtered[id] = item
	}

	return flattenTree(
		rootKids,
		func(id int64) (hnItem, bool) {
			item, ok := filtered[id]
			return item, ok
		},
		func(item hnItem) []int64 {
			return item.Kids
		},
		func(id int64, depth int, item hnItem) Comment {
			return hnItemToComment(id, item, depth)
		},
	)
}

func hnItemToComment(id int64, item hnItem, depth int) Comment {
	by := item.By
	if by == "" {
		by = "[deleted]"
	}
	return Comment{
		ID:    id,
		Text:  html.UnescapeString(item.Text),
		By:    by,
		Time:  item.Time,
		Depth: depth,
		Kids:  append([]int64(nil), item.Kids...),
	}
}

// flattenCached implements Algorithm C: re-order already-built Comments
// (loaded from Storage) back into DFS order. No deletion filtering is
// needed since Storage never retains deleted/dead nodes.
func flattenCached(rootKids []int64, byID map[int64]Comment) []Comment {
	return flattenTree(
		rootKids,
		func(id int64) (Comment, bool) {
			c, ok := byID[id]
			return c, ok
		},
		func(c Comment) []int64 {
			return c.Kids
		},
		func(_ int64, depth int, c Comment) Comment {
			c.Depth = depth
			return c
		},
	)
}
