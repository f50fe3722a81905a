package tui

// NamedView registers a view under a name, so that it can be located later
// with a selector. All other operations delegate to the wrapped view.
type NamedView struct {
	View
	name string
}

// Named wraps view under the given name.
func Named(name string, view View) *NamedView {
	return &NamedView{View: view, name: name}
}

// Name returns the name the wrapped view is registered under.
func (v *NamedView) Name() string { return v.name }

// Find matches the wrapped view against the selector under the registered
// name before delegating the search to it.
func (v *NamedView) Find(sel Selector) View {
	if sel(v.View, v.name) {
		return v.View
	}
	return v.View.Find(sel)
}
