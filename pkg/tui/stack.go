package tui

import "github.com/weftui/weft/pkg/term"

// StackView is one screen: an ordered stack of full-area layers, rendered
// bottom to top. The topmost layer alone receives layout priority and
// input, matching the modal-overlay model.
type StackView struct {
	layers []View
}

// NewStackView returns an empty screen.
func NewStackView() *StackView {
	return &StackView{}
}

// AddLayer pushes a new layer on top of the stack. It immediately becomes
// the input target.
func (v *StackView) AddLayer(layer View) {
	v.layers = append(v.layers, layer)
}

// PopLayer removes the top layer. It is a no-op when the stack is empty.
func (v *StackView) PopLayer() {
	if len(v.layers) == 0 {
		return
	}
	v.layers[len(v.layers)-1] = nil
	v.layers = v.layers[:len(v.layers)-1]
}

// Len returns the number of layers.
func (v *StackView) Len() int { return len(v.layers) }

// Layout lays out every layer against the full screen size; layers are
// full-area overlays, with no per-layer positioning.
func (v *StackView) Layout(width, height int) {
	for _, layer := range v.layers {
		layer.Layout(width, height)
	}
}

// Draw paints the layers bottom to top into the same area, so later layers
// occlude earlier ones. Only the top layer is drawn focused.
func (v *StackView) Draw(p *Painter) {
	width, height := p.Size()
	for i, layer := range v.layers {
		top := i == len(v.layers)-1
		layer.Draw(p.Sub(0, 0, width, height, top && p.Focused()))
	}
}

// Handle offers the event to the topmost layer only. If that layer ignores
// it, the stack ignores it; lower layers never see input.
func (v *StackView) Handle(ev term.Event) Result {
	if len(v.layers) == 0 {
		return Ignored
	}
	return v.layers[len(v.layers)-1].Handle(ev)
}

// Find searches the layers top to bottom and returns the first match.
func (v *StackView) Find(sel Selector) View {
	for i := len(v.layers) - 1; i >= 0; i-- {
		if found := v.layers[i].Find(sel); found != nil {
			return found
		}
	}
	return nil
}
