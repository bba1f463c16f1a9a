package catalog

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/tradecore/backend/internal/domain/shared"
)

// Tree indexes a company's categories for hierarchy queries. It is built from
// a loaded snapshot; mutations still go through the Category aggregate and the
// repository.
type Tree struct {
	byID     map[uuid.UUID]*Category
	children map[uuid.UUID][]*Category
	roots    []*Category
}

// NewTree builds the id and parent indexes from a category snapshot
func NewTree(categories []Category) *Tree {
	t := &Tree{
		byID:     make(map[uuid.UUID]*Category, len(categories)),
		children: make(map[uuid.UUID][]*Category),
	}

	for i := range categories {
		c := &categories[i]
		t.byID[c.ID] = c
	}
	for i := range categories {
		c := &categories[i]
		if c.ParentID == nil {
			t.roots = append(t.roots, c)
			continue
		}
		t.children[*c.ParentID] = append(t.children[*c.ParentID], c)
	}

	sortByName(t.roots)
	for id := range t.children {
		sortByName(t.children[id])
	}

	return t
}

func sortByName(nodes []*Category) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
}

// Get returns the category with the given ID, if loaded
func (t *Tree) Get(id uuid.UUID) (*Category, bool) {
	c, ok := t.byID[id]
	return c, ok
}

// Roots returns the top-level categories
func (t *Tree) Roots() []*Category {
	return t.roots
}

// Children returns the direct children of the given category
func (t *Tree) Children(id uuid.UUID) []*Category {
	return t.children[id]
}

// HasChildren reports whether the category has at least one child
func (t *Tree) HasChildren(id uuid.UUID) bool {
	return len(t.children[id]) > 0
}

// IsAncestorOf walks parent pointers upward from descendant and reports
// whether ancestorID is found on the way to the root.
func (t *Tree) IsAncestorOf(ancestorID, descendantID uuid.UUID) bool {
	node, ok := t.byID[descendantID]
	if !ok {
		return false
	}
	for node.ParentID != nil {
		if *node.ParentID == ancestorID {
			return true
		}
		parent, ok := t.byID[*node.ParentID]
		if !ok {
			return false
		}
		node = parent
	}
	return false
}

// Depth returns the 1-based depth of the category (roots are depth 1)
func (t *Tree) Depth(id uuid.UUID) int {
	node, ok := t.byID[id]
	if !ok {
		return 0
	}
	depth := 1
	for node.ParentID != nil {
		parent, ok := t.byID[*node.ParentID]
		if !ok {
			break
		}
		node = parent
		depth++
	}
	return depth
}

// SubtreeDepth returns the height of the subtree rooted at id
func (t *Tree) SubtreeDepth(id uuid.UUID) int {
	max := 0
	for _, child := range t.children[id] {
		if d := t.SubtreeDepth(child.ID); d > max {
			max = d
		}
	}
	return max + 1
}

// FullPath joins the names from the root down to the category
func (t *Tree) FullPath(id uuid.UUID) string {
	node, ok := t.byID[id]
	if !ok {
		return ""
	}

	names := []string{node.Name}
	for node.ParentID != nil {
		parent, ok := t.byID[*node.ParentID]
		if !ok {
			break
		}
		node = parent
		names = append([]string{node.Name}, names...)
	}
	return strings.Join(names, " > ")
}

// Descendants returns every category below the given one, depth-first
func (t *Tree) Descendants(id uuid.UUID) []*Category {
	var out []*Category
	for _, child := range t.children[id] {
		out = append(out, child)
		out = append(out, t.Descendants(child.ID)...)
	}
	return out
}

// ValidateMove checks that reparenting category under newParent keeps the
// tree acyclic and within the depth limit.
func (t *Tree) ValidateMove(categoryID uuid.UUID, newParentID *uuid.UUID) error {
	category, ok := t.byID[categoryID]
	if !ok {
		return shared.ErrNotFound
	}

	if newParentID == nil {
		if t.SubtreeDepth(categoryID) > MaxCategoryDepth {
			return shared.NewDomainError("MAX_DEPTH_EXCEEDED", "Category tree depth limit exceeded")
		}
		return nil
	}

	if *newParentID == categoryID {
		return shared.NewDomainError("CIRCULAR_REFERENCE", "Category cannot be its own parent")
	}

	parent, ok := t.byID[*newParentID]
	if !ok {
		return shared.ErrNotFound
	}
	if parent.CompanyID != category.CompanyID {
		return shared.ErrNotFound
	}

	// Moving under one of our own descendants would create a cycle.
	if t.IsAncestorOf(categoryID, *newParentID) {
		return shared.NewDomainError("CIRCULAR_REFERENCE", "Cannot move a category under its own descendant")
	}

	if t.Depth(*newParentID)+t.SubtreeDepth(categoryID) > MaxCategoryDepth {
		return shared.NewDomainError("MAX_DEPTH_EXCEEDED", "Category tree depth limit exceeded")
	}

	return nil
}
