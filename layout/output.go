package layout

// ChildLayout is the computed rect and measurement result for one child,
// in input order (spec.md §3).
type ChildLayout struct {
	Left, Top, Width, Height float32
	Result                   any
}

// LayoutOutput is the result of one Calculate call (spec.md §3).
type LayoutOutput struct {
	Width, Height, Baseline float32
	Children                []ChildLayout
}
