package enum

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Exhaustive dispatch
// ---------------------------------------------------------------------------

func messageArms() []Arm[string] {
	return []Arm[string]{
		On(Case("Quit"), func(Bindings) string { return "quit" }),
		On(CaseFields("Move", F("x", Bind("x")), F("y", Bind("y"))), func(b Bindings) string {
			return fmt.Sprintf("move to %d,%d", MustGet[int32](b, "x"), MustGet[int32](b, "y"))
		}),
		On(Case("Write", Bind("text")), func(b Bindings) string {
			return "write " + MustGet[string](b, "text")
		}),
		On(Case("ChangeColor", Bind("r"), Bind("g"), Bind("b")), func(b Bindings) string {
			return fmt.Sprintf("color %d %d %d", MustGet[int32](b, "r"), MustGet[int32](b, "g"), MustGet[int32](b, "b"))
		}),
	}
}

func TestCompile_FullCoverageInAnyOrder(t *testing.T) {
	e := defineMessage(t)
	values := []Value{
		e.MustNew("Quit"),
		e.MustNew("Move", int32(3), int32(4)),
		e.MustNew("Write", "hello"),
		e.MustNew("ChangeColor", int32(1), int32(2), int32(3)),
	}
	want := []string{"quit", "move to 3,4", "write hello", "color 1 2 3"}

	arms := messageArms()
	orders := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}}
	for _, order := range orders {
		permuted := make([]Arm[string], len(order))
		for i, j := range order {
			permuted[i] = arms[j]
		}
		m, err := Compile(e, permuted...)
		if err != nil {
			t.Fatalf("order %v: Compile: %v", order, err)
		}
		for i, v := range values {
			got, err := m.Dispatch(v)
			if err != nil {
				t.Fatalf("Dispatch(%s): %v", v, err)
			}
			if got != want[i] {
				t.Errorf("order %v: Dispatch(%s) = %q, want %q", order, v, got, want[i])
			}
		}
	}
}

func TestCompile_RejectsMissingVariantAtDefinition(t *testing.T) {
	e := defineMessage(t)
	arms := messageArms()

	// No value of any variant is ever constructed here: the gap alone is fatal.
	_, err := Compile(e, arms[0], arms[2])
	if !errors.Is(err, ErrNonExhaustiveMatch) {
		t.Fatalf("expected ErrNonExhaustiveMatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing Move, ChangeColor") {
		t.Errorf("error should list missing variants in declaration order: %v", err)
	}
}

func TestCompile_EmptyArmListIsNonExhaustive(t *testing.T) {
	if _, err := Compile[int](defineMessage(t)); !errors.Is(err, ErrNonExhaustiveMatch) {
		t.Fatalf("expected ErrNonExhaustiveMatch, got %v", err)
	}
}

func TestCompile_WildcardCoversTheRest(t *testing.T) {
	e := defineMessage(t)
	m, err := Compile(e,
		On(Case("Write", Bind("s")), func(b Bindings) string { return MustGet[string](b, "s") }),
		On(Wild(), func(Bindings) string { return "other" }),
	)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := m.MustDispatch(e.MustNew("Quit")); got != "other" {
		t.Errorf("Quit dispatched to %q", got)
	}
	if got := m.MustDispatch(e.MustNew("Write", "x")); got != "x" {
		t.Errorf("Write dispatched to %q", got)
	}
}

func TestCompile_LiteralArmDoesNotCoverVariant(t *testing.T) {
	opt := OptionOf(U8)
	_, err := Compile(opt,
		On(Case("Some", Lit(uint8(3))), func(Bindings) string { return "three" }),
		On(Case("None"), func(Bindings) string { return "none" }),
	)
	if !errors.Is(err, ErrNonExhaustiveMatch) {
		t.Fatalf("Some(3) alone must not cover Some: %v", err)
	}
}

func TestDispatch_LiteralTakesPrecedence(t *testing.T) {
	opt := OptionOf(U8)
	var calls []string
	m := MustCompile(opt,
		On(Case("Some", Lit(uint8(3))), func(Bindings) string { calls = append(calls, "h1"); return "h1" }),
		On(Case("Some", Ignore()), func(Bindings) string { calls = append(calls, "h2"); return "h2" }),
		On(Case("None"), func(Bindings) string { calls = append(calls, "h3"); return "h3" }),
	)

	got, err := m.Dispatch(opt.MustNew("Some", uint8(3)))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if got != "h1" || len(calls) != 1 {
		t.Fatalf("Some(3) ran %v, want only h1", calls)
	}

	calls = nil
	if got := m.MustDispatch(opt.MustNew("Some", uint8(4))); got != "h2" || len(calls) != 1 {
		t.Errorf("Some(4) ran %v", calls)
	}
	calls = nil
	if got := m.MustDispatch(opt.MustNew("None")); got != "h3" || len(calls) != 1 {
		t.Errorf("None ran %v", calls)
	}
}

func TestDispatch_NestedPatterns(t *testing.T) {
	addr := MustDefine("NestedAddr", Tuple("V4", U8, U8, U8, U8), Single("V6", String))
	if _, err := Register(addr); err != nil {
		t.Fatalf("Register: %v", err)
	}
	maybe := OptionOf(Named("NestedAddr"))

	m := MustCompile(maybe,
		On(Case("Some", Nested(Case("V4", Lit(uint8(127)), Ignore(), Ignore(), Bind("last")))), func(b Bindings) string {
			return fmt.Sprintf("loopback-ish .%d", MustGet[uint8](b, "last"))
		}),
		On(Case("Some", Bind("a")), func(b Bindings) string { return "addr " + MustGet[Value](b, "a").String() }),
		On(Case("None"), func(Bindings) string { return "none" }),
	)

	loop := maybe.MustNew("Some", addr.MustNew("V4", uint8(127), uint8(0), uint8(0), uint8(1)))
	if got := m.MustDispatch(loop); got != "loopback-ish .1" {
		t.Errorf("got %q", got)
	}
	v6 := maybe.MustNew("Some", addr.MustNew("V6", "::1"))
	if got := m.MustDispatch(v6); got != `addr V6("::1")` {
		t.Errorf("got %q", got)
	}
}

func TestCompile_PatternValidation(t *testing.T) {
	e := defineMessage(t)
	noop := func(Bindings) int { return 0 }
	tests := []struct {
		name string
		arm  Arm[int]
		want error
	}{
		{"unknown variant", On(Case("Jump"), noop), ErrUnknownVariant},
		{"wrong arity", On(Case("ChangeColor", Bind("r")), noop), ErrArityMismatch},
		{"literal type", On(Case("Write", Lit(42)), noop), ErrTypeMismatch},
		{"duplicate binding", On(Case("ChangeColor", Bind("c"), Bind("c"), Ignore()), noop), ErrDuplicateBinding},
		{"unknown field", On(CaseFields("Move", F("z", Ignore())), noop), ErrUnknownField},
		{"fields on tuple", On(CaseFields("ChangeColor"), noop), ErrArityMismatch},
		{"nested on string", On(Case("Write", Nested(Wild())), noop), ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(e, tt.arm, On(Wild(), noop))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Compile error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Compile(e, Arm[int]{Pattern: Wild()}); err == nil {
		t.Error("arm without handler should be rejected")
	}
	if _, err := Compile(e, Arm[int]{Handler: noop}); err == nil {
		t.Error("arm without pattern should be rejected")
	}
}

func TestCompile_ReportsUnreachableArms(t *testing.T) {
	e := defineMessage(t)
	noop := func(Bindings) int { return 0 }
	m, err := Compile(e,
		On(Case("Write", Ignore()), noop),
		On(Case("Write", Lit("again")), noop),
		On(Wild(), noop),
		On(Case("Quit"), noop),
	)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	got := m.Unreachable()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Unreachable() = %v, want [1 3]", got)
	}
}

func TestDispatch_ForeignValue(t *testing.T) {
	e := defineMessage(t)
	m := MustCompile(e, On(Wild(), func(Bindings) int { return 1 }))
	other := MustDefine("IpAddrKind", Unit("V4"), Unit("V6"))

	if _, err := m.Dispatch(other.MustNew("V4")); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("foreign value: %v", err)
	}
	if _, err := m.Dispatch(Value{}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("invalid value: %v", err)
	}
}

func TestMatch_OneShot(t *testing.T) {
	kind := MustDefine("IpAddrKind", Unit("V4"), Unit("V6"))
	got, err := Match(kind.MustNew("V6"),
		On(Case("V4"), func(Bindings) int { return 4 }),
		On(Case("V6"), func(Bindings) int { return 6 }),
	)
	if err != nil || got != 6 {
		t.Fatalf("Match = %d, %v", got, err)
	}

	_, err = Match(kind.MustNew("V6"), On(Case("V4"), func(Bindings) int { return 4 }))
	if !errors.Is(err, ErrNonExhaustiveMatch) {
		t.Fatalf("expected ErrNonExhaustiveMatch, got %v", err)
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNonExhaustiveMatch) {
			t.Errorf("recovered %v, want ErrNonExhaustiveMatch", r)
		}
	}()
	MustCompile(defineMessage(t), On(Case("Quit"), func(Bindings) int { return 0 }))
}

func TestBindings_Get(t *testing.T) {
	b := Bindings{"n": uint8(3)}
	if n, ok := Get[uint8](b, "n"); !ok || n != 3 {
		t.Errorf("Get = %v, %v", n, ok)
	}
	if _, ok := Get[string](b, "n"); ok {
		t.Error("wrong type should not be ok")
	}
	if _, ok := Get[uint8](b, "missing"); ok {
		t.Error("missing binding should not be ok")
	}
}

// ---------------------------------------------------------------------------
// Nested payloads
// ---------------------------------------------------------------------------

// A schema that only shares its name with the registered one must not reach
// a nested pattern compiled against the registered variants.
func TestNested_RejectsSameNameSchema(t *testing.T) {
	registered := MustDefine("GuardedInner", Single("A", I8), Unit("B"))
	if _, err := Register(registered); err != nil {
		t.Fatalf("Register: %v", err)
	}
	foreign := MustDefine("GuardedInner", Unit("A"), Unit("B"))
	outer := MustDefine("GuardedOuter", Single("Wrap", Named("GuardedInner")))

	if _, err := outer.New("Wrap", foreign.MustNew("A")); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("New with a foreign payload: %v", err)
	}
	if _, err := outer.New("Wrap", registered.MustNew("A", int8(1))); err != nil {
		t.Fatalf("New with the registered payload: %v", err)
	}

	m := MustCompile(outer,
		On(Case("Wrap", Nested(Case("A", Bind("x")))), func(b Bindings) string {
			return fmt.Sprintf("a %d", MustGet[int8](b, "x"))
		}),
		On(Wild(), func(Bindings) string { return "other" }),
	)

	forged := Value{enum: outer, index: 0, fields: []interface{}{foreign.MustNew("A")}}
	got, err := m.Dispatch(forged)
	if err != nil || got != "other" {
		t.Errorf("Dispatch(forged) = %q, %v", got, err)
	}

	short := Value{enum: outer, index: 0, fields: []interface{}{Value{enum: registered, index: 0}}}
	if got := m.MustDispatch(short); got != "other" {
		t.Errorf("Dispatch(short payload) = %q", got)
	}

	good := outer.MustNew("Wrap", registered.MustNew("A", int8(7)))
	if got := m.MustDispatch(good); got != "a 7" {
		t.Errorf("Dispatch(good) = %q", got)
	}
}

// Coverage of nested patterns is conservative: arms that split an inner
// enumeration across several outer arms are not combined.
func TestCompile_NestedSplitIsNotCombined(t *testing.T) {
	nested := OptionOf(OptionType(U8))
	noop := func(Bindings) string { return "" }

	_, err := Compile(nested,
		On(Case("Some", Nested(Case("Some", Ignore()))), noop),
		On(Case("Some", Nested(Case("None"))), noop),
		On(Case("None"), noop),
	)
	if !errors.Is(err, ErrNonExhaustiveMatch) {
		t.Fatalf("expected ErrNonExhaustiveMatch, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "Some") {
		t.Errorf("error should name Some: %v", err)
	}

	inner := OptionOf(U8)
	m, err := Compile(nested,
		On(Case("Some", Nested(Case("Some", Bind("n")))), func(b Bindings) string {
			return fmt.Sprintf("some %d", MustGet[uint8](b, "n"))
		}),
		On(Case("Some", Nested(Case("None"))), func(Bindings) string { return "some none" }),
		On(Case("Some", Ignore()), func(Bindings) string { return "unused" }),
		On(Case("None"), func(Bindings) string { return "none" }),
	)
	if err != nil {
		t.Fatalf("Compile with a catch-all Some arm: %v", err)
	}
	if got := m.MustDispatch(nested.MustNew("Some", inner.MustNew("Some", uint8(3)))); got != "some 3" {
		t.Errorf("got %q", got)
	}
	if got := m.MustDispatch(nested.MustNew("Some", inner.MustNew("None"))); got != "some none" {
		t.Errorf("got %q", got)
	}
}
