package tabnav

// Accessory is an opaque drawable widget placed in the header region.
// Accessories that also implement Width() int declare an explicit
// width; otherwise the rendered block is constrained to twice as many
// columns as it has rows.
type Accessory interface {
	View() string
}

// StaticAccessory is a fixed string block accessory, convenient for
// logos and badges.
type StaticAccessory struct {
	Content string
	// Cols is the explicit width in columns; 0 means unsized.
	Cols int
}

func (a StaticAccessory) View() string { return a.Content }

func (a StaticAccessory) Width() int { return a.Cols }
