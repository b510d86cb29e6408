package gate

import "testing"

func TestSetupModeAllowsEveryone(t *testing.T) {
	g := New()
	for _, who := range []string{"", "alice", "Bob"} {
		d := g.Evaluate(who)
		if !d.Allow {
			t.Fatalf("%q should be allowed in setup mode, got: %s", who, d.Reason)
		}
		if d.Reason != "setup_mode" {
			t.Fatalf("unexpected reason: %s", d.Reason)
		}
	}
}

func TestRegisteredUserAllowed(t *testing.T) {
	g := New()
	g.Register("Alice")
	if !g.Authorize("Alice") {
		t.Fatal("registered user should be allowed")
	}
}

func TestOtherUsersDenied(t *testing.T) {
	g := New()
	g.Register("Alice")
	for _, who := range []string{"alice", "Alice ", "Bob"} {
		d := g.Evaluate(who)
		if d.Allow {
			t.Fatalf("%q should be denied", who)
		}
		if d.Reason != "user_not_registered: "+who {
			t.Fatalf("unexpected reason: %s", d.Reason)
		}
	}
}

func TestAnonymousDeniedOnceRegistered(t *testing.T) {
	g := New()
	g.Register("Alice")
	d := g.Evaluate("")
	if d.Allow {
		t.Fatal("empty claim should be denied")
	}
	if d.Reason != "anonymous_rejected" {
		t.Fatalf("unexpected reason: %s", d.Reason)
	}
}

func TestRegisterOverwrites(t *testing.T) {
	g := New()
	g.Register("Alice")
	g.Register("Bob")
	if g.Authorize("Alice") {
		t.Fatal("previous identity should no longer be allowed")
	}
	name, ok := g.Registered()
	if !ok || name != "Bob" {
		t.Fatalf("Registered() = %q, %v", name, ok)
	}
}

func TestResetReturnsToSetupMode(t *testing.T) {
	g := New()
	g.Register("Alice")
	g.Reset()
	if _, ok := g.Registered(); ok {
		t.Fatal("expected no registered user after reset")
	}
	if !g.Authorize("Mallory") {
		t.Fatal("setup mode should allow anyone")
	}

	g.Register("Alice")
	g.Register("")
	if _, ok := g.Registered(); ok {
		t.Fatal("registering the empty string should reset")
	}
}

func TestUnauthorizedMessage(t *testing.T) {
	g := New()
	if got := g.UnauthorizedMessage(); got != "Sorry, I am only available for my registered user." {
		t.Fatalf("unexpected message: %q", got)
	}
	g.Register("Priya")
	if got := g.UnauthorizedMessage(); got != "Sorry, I am only available for Priya." {
		t.Fatalf("unexpected message: %q", got)
	}
}
