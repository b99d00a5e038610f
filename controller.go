package tabnav

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/kbenton/tabnav/layout"
	"github.com/kbenton/tabnav/styles"
)

// PresentationMode identifies which selector widget is visible. Exactly
// one is visible at any time; the mode is derived from the environment
// and the active policy, never stored independently of them.
type PresentationMode int

const (
	ModeSidePanel PresentationMode = iota
	ModeBottomBar
)

func (m PresentationMode) String() string {
	if m == ModeSidePanel {
		return "side panel"
	}
	return "bottom bar"
}

// Controller is the single authority for tab selection and presentation
// mode. It owns both selector widgets and keeps their highlighted item
// mirrored from one canonical selection, so the hidden widget is always
// correct on its next reveal. Every public mutation fully propagates to
// both mirrors and to geometry before returning: the controller runs on
// the program's single event loop and no caller can observe a torn
// update.
type Controller struct {
	opts Options
	keys KeyMap

	zones *zone.Manager
	items []Item

	// contents holds the live content models in item order; items stay
	// immutable while their models advance through Update.
	contents    []tea.Model
	initialized []bool

	selected int // -1 when the tab set is empty
	panel    *SidePanel
	bar      *BottomBar

	delegate  PolicyDelegate
	accessory Accessory

	env  Environment
	mode PresentationMode
	geom layout.Geometry

	width  int
	height int
	ready  bool
	built  bool

	// presentation requested before Initialize; applied on build
	pendingPanel *bool

	diags diagnosticLog
}

// New creates a controller with the given options. Call Initialize to
// attach the tab set before first display.
func New(opts Options) *Controller {
	opts = opts.withDefaults()
	c := &Controller{
		opts:     opts,
		keys:     DefaultKeyMap(),
		zones:    zone.New(),
		selected: -1,
		mode:     ModeBottomBar,
	}
	return c
}

// Initialize attaches the ordered tab set, building both selector
// widgets bound to it and selecting index 0 when the set is non-empty.
// Safe to call again on a tab-set change: the prior view subtree and
// its hit zones are torn down fully before reconstruction, so rebuilds
// cannot leak rows or duplicate event subscriptions.
func (c *Controller) Initialize(items []Item) {
	if c.zones != nil {
		c.zones.Close()
	}
	c.zones = zone.New()

	c.items = make([]Item, len(items))
	copy(c.items, items)

	c.contents = make([]tea.Model, len(items))
	c.initialized = make([]bool, len(items))
	for i, it := range items {
		c.contents[i] = it.Content
	}

	c.panel = newSidePanel(c.zones, c.items)
	c.bar = newBottomBar(c.zones, c.items)
	c.applyTints()
	if c.accessory != nil && c.opts.ShowsHeaderRegion {
		c.panel.setAccessory(c.accessory)
	}
	c.built = true

	c.selected = -1
	if len(c.items) > 0 {
		c.selected = 0
	}
	c.panel.Select(c.selected)
	c.bar.Select(c.selected)

	if c.pendingPanel != nil {
		use := *c.pendingPanel
		c.pendingPanel = nil
		c.SetPresentationVisible(use)
	} else {
		c.SetPresentationVisible(c.mode == ModeSidePanel)
	}
}

// ItemCount reports the number of attached tabs.
func (c *Controller) ItemCount() int { return len(c.items) }

// SelectedIndex reports the canonical selection, -1 when the tab set is
// empty.
func (c *Controller) SelectedIndex() int { return c.selected }

// Mode reports the currently visible presentation.
func (c *Controller) Mode() PresentationMode { return c.mode }

// Geometry reports the last computed layout geometry.
func (c *Controller) Geometry() layout.Geometry { return c.geom }

// Env reports the last environment descriptor handed to the controller.
func (c *Controller) Env() Environment { return c.env }

// Panel exposes the side panel mirror, primarily for host inspection.
func (c *Controller) Panel() *SidePanel { return c.panel }

// Bar exposes the bottom bar mirror, primarily for host inspection.
func (c *Controller) Bar() *BottomBar { return c.bar }

// Diagnostics returns the recorded non-fatal diagnostics.
func (c *Controller) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diags.entries))
	copy(out, c.diags.entries)
	return out
}

// SetPolicyDelegate registers the host policy override. Passing nil
// restores the built-in policy.
func (c *Controller) SetPolicyDelegate(d PolicyDelegate) { c.delegate = d }

// SetOptions replaces the configuration surface and relayouts.
func (c *Controller) SetOptions(opts Options) {
	c.opts = opts.withDefaults()
	if c.built {
		c.applyTints()
		if !c.opts.ShowsHeaderRegion {
			c.panel.setAccessory(nil)
		} else if c.accessory != nil {
			c.panel.setAccessory(c.accessory)
		}
		c.relayout()
	}
}

// Options returns the active configuration surface.
func (c *Controller) Options() Options { return c.opts }

// SetKeyMap replaces the key bindings used by Update.
func (c *Controller) SetKeyMap(k KeyMap) { c.keys = k }

// SetHeaderAccessory attaches a widget to the panel header region. When
// the header region is disabled this is a documented no-op: a
// diagnostic is recorded and the accessory is not inserted anywhere.
func (c *Controller) SetHeaderAccessory(a Accessory) {
	if !c.opts.ShowsHeaderRegion {
		c.diags.record(DiagMisconfiguredFeature,
			"header accessory attached while header region is disabled; ignoring")
		return
	}
	c.accessory = a
	if c.built {
		c.panel.setAccessory(a)
	}
}

// SetSelectedIndex moves the canonical selection to i, updating the
// highlight on both the panel and the bar (the hidden one included)
// before returning; the selected content renders on the next frame.
// Selecting the already-selected index is valid: the highlight refresh
// still happens, matching host-visible re-selection semantics. An index
// outside [0, count) fails with OutOfRangeError and mutates nothing.
// Hosts selecting from their own Update loop should prefer SelectTab,
// which also returns the content activation command.
func (c *Controller) SetSelectedIndex(i int) error {
	if i < 0 || i >= len(c.items) {
		return &OutOfRangeError{Index: i, Count: len(c.items)}
	}
	c.selected = i
	c.panel.Select(i)
	c.bar.Select(i)
	return nil
}

// SetPresentationVisible imperatively shows the side panel (true) or
// the bottom bar (false), independent of policy evaluation. Callable
// before Initialize: the request is deferred and applied on build. The
// geometry swap — content leading edge against the panel's trailing
// edge, or full width above the bar — is applied in full before return.
func (c *Controller) SetPresentationVisible(useSidePanel bool) {
	if !c.built {
		v := useSidePanel
		c.pendingPanel = &v
		return
	}
	if useSidePanel {
		c.mode = ModeSidePanel
	} else {
		c.mode = ModeBottomBar
	}
	c.relayout()
}

// OnEnvironmentChanged applies a fresh environment snapshot: the policy
// (delegate first, built-in fallback) decides the visible selector, and
// geometry — header height preset included — is recomputed and fully
// applied before this returns, so a synchronous caller always observes
// a consistent mode/geometry pair.
func (c *Controller) OnEnvironmentChanged(env Environment) {
	c.env = env
	c.SetPresentationVisible(c.evalPolicy(env))
}

func (c *Controller) evalPolicy(env Environment) bool {
	if c.delegate != nil {
		return c.delegate.UseSidePanel(c, env)
	}
	return c.opts.Policy(env)
}

func (c *Controller) applyTints() {
	c.panel.SetAccent(c.opts.AccentTint)
	c.panel.SetBackground(c.opts.PanelBackground)
	c.bar.SetTint(c.opts.AccentTint)
}

// relayout recomputes the whole Geometry value and pushes the derived
// sizes into both widgets. The hidden widget keeps receiving plausible
// sizes so its next reveal needs no special casing.
func (c *Controller) relayout() {
	c.geom = layout.Calculate(
		c.opts.metrics(c.env.TopInset),
		c.mode == ModeSidePanel,
		c.env.Vertical == Compact,
		c.width, c.height,
	)

	if c.geom.UseSidePanel {
		c.panel.SetSize(c.geom.PanelWidth, c.geom.PanelHeight)
		c.panel.setHeader(c.geom.HeaderHeight, c.opts.HeaderSeparated)
	} else {
		c.panel.SetSize(c.opts.SidePanelWidth, c.height)
		c.panel.setHeader(0, false)
	}
	c.panel.SetRowHeight(c.opts.RowHeight)
	c.panel.SetTopInset(c.env.TopInset)
	c.bar.SetSize(c.width)
}

// Init implements tea.Model. The initially selected content, if any, is
// initialized.
func (c *Controller) Init() tea.Cmd {
	return c.activateContent(c.selected)
}

// Update implements tea.Model. Window sizes become environment changes,
// mouse presses become row/bar selections via zone hit tests, tab-cycle
// and number keys move the selection, and everything else is forwarded
// to the active content model.
func (c *Controller) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		c.ready = true
		env := EnvironmentFrom(msg.Width, msg.Height)
		env.TopInset = c.env.TopInset
		prev := c.mode
		c.OnEnvironmentChanged(env)
		if c.built && c.mode != prev {
			mode := c.mode
			return c, func() tea.Msg { return ModeChangedMsg{Mode: mode} }
		}
		return c, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return c, nil
		}
		for i := range c.items {
			if c.zones.Get(rowZoneID(i)).InBounds(msg) {
				return c, c.RowTapped(i)
			}
			if c.zones.Get(barZoneID(i)).InBounds(msg) {
				return c, c.BarItemSelected(i)
			}
		}
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, c.keys.NextTab):
			if n := len(c.items); n > 0 {
				return c, c.RowTapped((c.selected + 1) % n)
			}
			return c, nil
		case key.Matches(msg, c.keys.PrevTab):
			if n := len(c.items); n > 0 {
				return c, c.RowTapped((c.selected - 1 + n) % n)
			}
			return c, nil
		case key.Matches(msg, c.keys.GotoTab):
			i := int(msg.String()[0] - '1')
			if i >= 0 && i < len(c.items) {
				return c, c.RowTapped(i)
			}
			return c, nil
		}
	}

	return c, c.forwardToContent(msg)
}

// SelectTab moves the canonical selection like SetSelectedIndex and
// returns the command that activates the newly selected content, for
// hosts driving selection programmatically (deep links).
func (c *Controller) SelectTab(i int) (tea.Cmd, error) {
	if err := c.SetSelectedIndex(i); err != nil {
		return nil, err
	}
	return tea.Batch(c.activateContent(i), selectionChanged(i)), nil
}

// RowTapped handles a row selection event from the side panel (the key
// paths share its semantics). Out-of-range indexes are dropped: event
// sources are not trusted callers.
func (c *Controller) RowTapped(i int) tea.Cmd {
	cmd, err := c.SelectTab(i)
	if err != nil {
		return nil
	}
	return cmd
}

// BarItemSelected handles a bar item selection event: the item's
// ordinal position among registered items becomes the selection, and
// the panel additionally scrolls the matching row into view, top
// aligned, so the hidden mirror is already positioned on its next
// reveal.
func (c *Controller) BarItemSelected(i int) tea.Cmd {
	cmd, err := c.SelectTab(i)
	if err != nil {
		return nil
	}
	c.panel.ScrollRowIntoView(i)
	return cmd
}

func selectionChanged(i int) tea.Cmd {
	return func() tea.Msg { return SelectionChangedMsg{Index: i} }
}

func (c *Controller) activateContent(i int) tea.Cmd {
	if i < 0 || i >= len(c.contents) || c.contents[i] == nil {
		return nil
	}
	if c.initialized[i] {
		return nil
	}
	c.initialized[i] = true
	return c.contents[i].Init()
}

func (c *Controller) forwardToContent(msg tea.Msg) tea.Cmd {
	if c.selected < 0 || c.selected >= len(c.contents) || c.contents[c.selected] == nil {
		return nil
	}
	m, cmd := c.contents[c.selected].Update(msg)
	c.contents[c.selected] = m
	return cmd
}

// View implements tea.Model, composing the visible selector and the
// content region.
func (c *Controller) View() string {
	if !c.ready || !c.built {
		return lipgloss.Place(c.width, c.height,
			lipgloss.Center, lipgloss.Center,
			styles.TextDimStyle.Render("Loading..."))
	}

	if c.geom.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			c.width, c.height, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(c.width, c.height,
			lipgloss.Center, lipgloss.Center, styles.TextDimStyle.Render(msg))
	}

	// A rebuild or environment change before first display can leave the
	// panel without a marked row. Re-apply the canonical selection; this
	// never picks a fresh one.
	if c.selected >= 0 && c.panel.Selected() == -1 {
		c.panel.Select(c.selected)
		c.bar.Select(c.selected)
	}

	content := c.contentView()

	var out string
	if c.mode == ModeSidePanel {
		out = lipgloss.JoinHorizontal(lipgloss.Top, c.panel.View(), content)
	} else {
		parts := make([]string, 0, 3)
		if c.env.TopInset > 0 {
			parts = append(parts, strings.Repeat("\n", c.env.TopInset-1))
		}
		parts = append(parts, content, c.bar.View())
		out = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	return c.zones.Scan(out)
}

func (c *Controller) contentView() string {
	var body string
	if c.selected >= 0 && c.selected < len(c.contents) && c.contents[c.selected] != nil {
		body = c.contents[c.selected].View()
	}
	return lipgloss.Place(c.geom.ContentWidth, c.geom.ContentHeight,
		lipgloss.Left, lipgloss.Top, body)
}
