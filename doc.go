// Package tabnav provides an adaptive tab-navigation container for
// bubbletea programs. A single Controller owns the selected-tab state and
// mirrors it into two interchangeable selector widgets: a fixed-width
// side panel for wide terminals and a bottom bar for narrow ones. Which
// selector is visible is decided from an Environment descriptor by a
// deterministic, override-able policy.
//
// The controller is designed to own the full program frame: hosts embed
// it as (or inside) their top-level tea.Model, feed it window size and
// input messages through Update, and render it with View.
package tabnav
