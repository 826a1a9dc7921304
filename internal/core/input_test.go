package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) || f.Has(ActionPause) {
		t.Error("Set/Has mismatch")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should drop all actions")
	}

	g := FrameOf(ActionConfirm, ActionRestart)
	if !g.Has(ActionConfirm) || !g.Has(ActionRestart) {
		t.Error("FrameOf should set every action")
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range []Action{ActionJump, ActionConfirm, ActionRestart, ActionPause} {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("fly"); ok {
		t.Error("unknown action name should not parse")
	}
	if _, ok := ParseAction("none"); ok {
		t.Error("none is not an input")
	}
}
