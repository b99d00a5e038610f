package tabnav

// Policy maps an Environment to a "use side panel" decision. Policies
// must be pure: they are re-evaluated on every environment change and
// their result is never cached, because the environment can change many
// times within one session (rotation, split-screen resize).
type Policy func(Environment) bool

// DefaultPolicy shows the side panel when the horizontal class is
// Regular or the vertical class is Compact: wide terminals and squat
// landscape-like terminals get the panel, narrow tall ones keep the
// bottom bar.
func DefaultPolicy(env Environment) bool {
	return env.Horizontal == Regular || env.Vertical == Compact
}

// PolicyDelegate lets the host override the presentation policy. When a
// delegate is registered it is the sole authority for the decision; the
// built-in policy is consulted only when no delegate is set.
type PolicyDelegate interface {
	UseSidePanel(c *Controller, env Environment) bool
}

// PolicyDelegateFunc adapts a plain function to PolicyDelegate.
type PolicyDelegateFunc func(c *Controller, env Environment) bool

func (f PolicyDelegateFunc) UseSidePanel(c *Controller, env Environment) bool {
	return f(c, env)
}
