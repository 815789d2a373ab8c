package render

// Options carry per-render data that renderers may honor without mutating
// the form itself.
type Options struct {
	// Title overrides the form's own title for this render.
	Title string
	// ReadOnly asks interactive renderers to display current values without
	// prompting. Static renderers mark controls disabled.
	ReadOnly bool
}
