package tui

// MenuTree is a list of menu items: leaves that fire a callback, subtrees
// that open a nested menu, and delimiters. Trees are built in fluent style:
//
//	tui.NewMenuTree().
//		Leaf("New", newFile).
//		Delimiter().
//		Subtree("Recent", recent)
type MenuTree struct {
	items []menuItem
}

type menuItemKind int

const (
	menuLeaf menuItemKind = iota
	menuSubtree
	menuDelimiter
)

type menuItem struct {
	kind     menuItemKind
	title    string
	callback Callback
	subtree  *MenuTree
}

// NewMenuTree returns an empty menu tree.
func NewMenuTree() *MenuTree {
	return &MenuTree{}
}

// Leaf appends an item that fires cb when activated.
func (t *MenuTree) Leaf(title string, cb Callback) *MenuTree {
	t.items = append(t.items, menuItem{kind: menuLeaf, title: title, callback: cb})
	return t
}

// Subtree appends an item that opens the nested tree when activated.
func (t *MenuTree) Subtree(title string, sub *MenuTree) *MenuTree {
	t.items = append(t.items, menuItem{kind: menuSubtree, title: title, subtree: sub})
	return t
}

// Delimiter appends a non-selectable separator.
func (t *MenuTree) Delimiter() *MenuTree {
	t.items = append(t.items, menuItem{kind: menuDelimiter})
	return t
}

// Len returns the number of items, including delimiters.
func (t *MenuTree) Len() int { return len(t.items) }

// IsEmpty returns whether the tree has no items.
func (t *MenuTree) IsEmpty() bool { return len(t.items) == 0 }

// Returns the index of the first selectable item at or after i, wrapping
// around, or -1 if no item is selectable.
func (t *MenuTree) selectableFrom(i, step int) int {
	if len(t.items) == 0 {
		return -1
	}
	i = ((i % len(t.items)) + len(t.items)) % len(t.items)
	for n := 0; n < len(t.items); n++ {
		if t.items[i].kind != menuDelimiter {
			return i
		}
		i = ((i+step)%len(t.items) + len(t.items)) % len(t.items)
	}
	return -1
}
