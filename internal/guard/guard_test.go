package guard

import "testing"

func TestUnblockedGuardAllowsLeaving(t *testing.T) {
	g := New(false, "must not appear")

	allowed, message := g.AttemptLeave()
	if !allowed {
		t.Error("guard without a pending action should allow leaving")
	}
	if message != "" {
		t.Errorf("unexpected message: %q", message)
	}
}

func TestBlockedGuardInterceptsLeave(t *testing.T) {
	g := New(true, "change your password first")

	allowed, message := g.AttemptLeave()
	if allowed {
		t.Error("blocked guard should intercept leaving")
	}
	if message != "change your password first" {
		t.Errorf("unexpected message: %q", message)
	}
}

// TestRapidLeaveAttemptsShowOnePrompt verifies that repeated attempts while
// the first prompt is still up never stack a second prompt.
func TestRapidLeaveAttemptsShowOnePrompt(t *testing.T) {
	g := New(true, "blocked")

	_, first := g.AttemptLeave()
	if first == "" {
		t.Fatal("first attempt should carry the message")
	}

	for i := 0; i < 5; i++ {
		allowed, message := g.AttemptLeave()
		if allowed {
			t.Error("guard should stay blocked")
		}
		if message != "" {
			t.Errorf("attempt %d produced a duplicate prompt: %q", i, message)
		}
	}

	// After dismissal the next attempt prompts again
	g.DismissPrompt()
	if _, message := g.AttemptLeave(); message == "" {
		t.Error("post-dismissal attempt should prompt again")
	}
}

// TestCompleteIsTerminal verifies the guard never re-blocks once the
// required action has completed.
func TestCompleteIsTerminal(t *testing.T) {
	g := New(true, "blocked")
	g.Complete()

	for i := 0; i < 3; i++ {
		allowed, message := g.AttemptLeave()
		if !allowed {
			t.Errorf("attempt %d blocked after completion", i)
		}
		if message != "" {
			t.Errorf("attempt %d produced a message after completion: %q", i, message)
		}
	}

	if g.Blocked() {
		t.Error("guard should report unblocked")
	}

	// Completing twice is a no-op
	g.Complete()
	if g.Blocked() {
		t.Error("guard re-blocked after second Complete")
	}
}
