package tabnav

// SelectionChangedMsg is emitted after the canonical selection moved to
// a new index and both selector mirrors were updated.
type SelectionChangedMsg struct {
	Index int
}

// ModeChangedMsg is emitted after the visible presentation switched
// between the side panel and the bottom bar.
type ModeChangedMsg struct {
	Mode PresentationMode
}
