package guard

import "sync"

// Guard blocks navigation away from a screen until a mandatory one-time
// action (password change, policy acknowledgement) completes. Once
// unblocked it never re-blocks for the lifetime of the instance.
type Guard struct {
	mu        sync.Mutex
	blocked   bool
	prompting bool
	message   string
}

// New returns a Guard. It starts blocked when the triggering condition
// holds at construction time.
func New(required bool, message string) *Guard {
	return &Guard{blocked: required, message: message}
}

// Blocked reports whether leaving is currently intercepted
func (g *Guard) Blocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.blocked
}

// AttemptLeave is called when the surrounding navigation tries to leave the
// screen. It returns whether leaving is allowed and, if not, the message to
// show. The message is returned at most once per prompt: repeated attempts
// while the first prompt is still up return an empty message so prompts
// never stack.
func (g *Guard) AttemptLeave() (allowed bool, message string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.blocked {
		return true, ""
	}
	if g.prompting {
		return false, ""
	}
	g.prompting = true
	return false, g.message
}

// DismissPrompt marks the current prompt as dismissed, allowing the next
// leave attempt to show the message again.
func (g *Guard) DismissPrompt() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompting = false
}

// Complete transitions the guard to unblocked. The transition fires once;
// further calls are no-ops. Unblocked is terminal.
func (g *Guard) Complete() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.blocked = false
	g.prompting = false
}
