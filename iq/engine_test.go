package iq

import "testing"

func TestEngineApplyMemoizes(t *testing.T) {
	var e engine
	e.reset("abc")

	runs := 0
	body := func() (string, bool) {
		runs++
		if !e.sc.literal("ab") {
			return "", false
		}
		return "ab", true
	}

	for i := 0; i < 3; i++ {
		e.sc.pos = 0
		text, ok := e.apply(ruleIdentifier, body)
		if !ok || text != "ab" || e.sc.pos != 2 {
			t.Fatalf("apply = (%q, %v) at pos %d, want (\"ab\", true) at 2", text, ok, e.sc.pos)
		}
	}
	if runs != 1 {
		t.Errorf("body ran %d times, want 1", runs)
	}

	stats := e.finish()
	if stats.Evaluations != 1 || stats.Hits != 2 || stats.Entries != 1 {
		t.Errorf("stats = %+v, want 1 evaluation, 2 hits, 1 entry", stats)
	}
}

func TestEngineApplyRejectRestores(t *testing.T) {
	var e engine
	e.reset("abc")

	runs := 0
	body := func() (string, bool) {
		runs++
		e.sc.literal("ab")
		return "", false
	}

	for i := 0; i < 2; i++ {
		if _, ok := e.apply(ruleRel, body); ok {
			t.Fatal("apply accepted a rejecting body")
		}
		if e.sc.pos != 0 {
			t.Fatalf("pos = %d after rejection, want 0", e.sc.pos)
		}
	}
	if runs != 1 {
		t.Errorf("body ran %d times, want 1", runs)
	}
}

func TestEngineKeysByPosition(t *testing.T) {
	var e engine
	e.reset("aa")

	runs := 0
	body := func() (string, bool) {
		runs++
		return "", e.sc.oneOf("a")
	}

	e.apply(ruleIdentifier, body)
	e.apply(ruleIdentifier, body)
	e.sc.pos = 0
	e.apply(ruleIdentifier, body)
	if runs != 2 {
		t.Errorf("body ran %d times, want 2", runs)
	}
	if e.sc.pos != 1 {
		t.Errorf("pos = %d after replay, want 1", e.sc.pos)
	}
}

func TestEnginePredicate(t *testing.T) {
	var e engine
	e.reset("and x")

	runs := 0
	body := func() (string, bool) {
		runs++
		return "", e.sc.literal("and")
	}

	for i := 0; i < 2; i++ {
		if !e.predicate(ruleKeyword, body) {
			t.Fatal("predicate = false, want true")
		}
		if e.sc.pos != 0 {
			t.Fatalf("predicate moved the cursor to %d", e.sc.pos)
		}
	}
	if runs != 1 {
		t.Errorf("body ran %d times, want 1", runs)
	}
	if ent := e.memo[memoKey{rule: ruleKeyword, pos: 0}]; ent.state != stateAccepted || ent.end != 0 {
		t.Errorf("memo entry = %+v, want accepted ending at 0", ent)
	}
}

func TestEngineResetDiscardsCache(t *testing.T) {
	var e engine
	e.reset("a")
	e.apply(ruleIdentifier, func() (string, bool) { return "", e.sc.anyChar() })
	e.reset("b")
	if len(e.memo) != 0 || e.stats != (Stats{}) {
		t.Errorf("reset kept %d entries and stats %+v", len(e.memo), e.stats)
	}
}

func TestRuleIDString(t *testing.T) {
	tests := []struct {
		id   ruleID
		want string
	}{
		{ruleTop, "top"},
		{ruleNotFactor, "notfactor"},
		{ruleAnd, "AND"},
		{ruleSpace, "skipWs"},
		{numRules, "rule(19)"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("ruleID(%d).String() = %q, want %q", int(tt.id), got, tt.want)
		}
	}
	for id := ruleID(0); id < numRules; id++ {
		if ruleNames[id] == "" {
			t.Errorf("rule %d has no name", int(id))
		}
	}
}
