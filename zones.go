package tabnav

import "fmt"

// Zone ID helpers for bubblezone hit detection. The same IDs are used
// in render paths (Mark) and input paths (Get().InBounds).

func rowZoneID(idx int) string {
	return fmt.Sprintf("tabnav-row-%d", idx)
}

func barZoneID(idx int) string {
	return fmt.Sprintf("tabnav-bar-%d", idx)
}
