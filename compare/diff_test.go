package compare_test

import (
	"slices"
	"testing"

	"go.uber.org/zap"

	"cssdiff/compare"
	"cssdiff/css"
)

func mapOf(entries ...any) *compare.SelectorMap {
	m := compare.NewSelectorMap()
	for i := 0; i+1 < len(entries); i += 2 {
		m.Set(entries[i].(string), entries[i+1].(css.Declarations))
	}
	return m
}

func buildFromCSS(t *testing.T, text string) *compare.SelectorMap {
	t.Helper()
	sheet, err := css.NewParser(zap.NewNop()).Parse([]byte(text))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	m, err := compare.Build(sheet)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return m
}

func TestDiff_SameMap(t *testing.T) {
	a := mapOf(
		".a", css.Declarations{"color": "red"},
		".b", css.Declarations{"margin": "0", "padding": "1px"},
	)

	r := compare.Diff(a, a)
	if !r.Empty() {
		t.Errorf("expected empty result, got %+v", r)
	}
	if r.OnlyInA == nil || r.OnlyInB == nil || r.Differing == nil {
		t.Error("expected non-nil empty lists")
	}
}

func TestDiff_EmptyMaps(t *testing.T) {
	r := compare.Diff(compare.NewSelectorMap(), compare.NewSelectorMap())
	if !r.Empty() {
		t.Errorf("expected empty result, got %+v", r)
	}
}

func TestDiff_Classification(t *testing.T) {
	a := mapOf(
		".only-a", css.Declarations{"color": "red"},
		".same", css.Declarations{"color": "red", "margin": "0"},
		".diff", css.Declarations{"color": "red"},
		".only-a-2", css.Declarations{},
	)
	b := mapOf(
		".diff", css.Declarations{"color": "blue"},
		".only-b", css.Declarations{"color": "red"},
		".same", css.Declarations{"margin": "0", "color": "red"},
	)

	r := compare.Diff(a, b)
	if !slices.Equal(r.OnlyInA, []string{".only-a", ".only-a-2"}) {
		t.Errorf("OnlyInA = %v", r.OnlyInA)
	}
	if !slices.Equal(r.OnlyInB, []string{".only-b"}) {
		t.Errorf("OnlyInB = %v", r.OnlyInB)
	}
	if !slices.Equal(r.Differing, []string{".diff"}) {
		t.Errorf("Differing = %v", r.Differing)
	}
	if _, ok := r.Changes[".same"]; ok {
		t.Error("identical selector must not have changes")
	}
}

func TestDiff_SwappedArguments(t *testing.T) {
	a := mapOf(
		".x", css.Declarations{"color": "red"},
		".y", css.Declarations{"color": "red"},
		".z", css.Declarations{"top": "0"},
	)
	b := mapOf(
		".y", css.Declarations{"color": "blue"},
		".w", css.Declarations{"color": "red"},
		".z", css.Declarations{"top": "0"},
	)

	ab := compare.Diff(a, b)
	ba := compare.Diff(b, a)

	if !slices.Equal(ab.OnlyInA, ba.OnlyInB) {
		t.Errorf("diff(a,b).OnlyInA = %v, diff(b,a).OnlyInB = %v", ab.OnlyInA, ba.OnlyInB)
	}
	if !slices.Equal(ab.OnlyInB, ba.OnlyInA) {
		t.Errorf("diff(a,b).OnlyInB = %v, diff(b,a).OnlyInA = %v", ab.OnlyInB, ba.OnlyInA)
	}
	if !slices.Equal(ab.Differing, ba.Differing) {
		t.Errorf("diff(a,b).Differing = %v, diff(b,a).Differing = %v", ab.Differing, ba.Differing)
	}
}

func TestDiff_ListsDisjoint(t *testing.T) {
	a := mapOf(".a", css.Declarations{"x": "1"}, ".b", css.Declarations{"x": "1"}, ".c", css.Declarations{"x": "1"})
	b := mapOf(".b", css.Declarations{"x": "2"}, ".c", css.Declarations{"x": "1"}, ".d", css.Declarations{})

	r := compare.Diff(a, b)
	seen := make(map[string]int)
	for _, list := range [][]string{r.OnlyInA, r.OnlyInB, r.Differing} {
		for _, k := range list {
			seen[k]++
		}
	}
	for k, n := range seen {
		if n != 1 {
			t.Errorf("selector %q reported %d times", k, n)
		}
	}
	if _, ok := seen[".c"]; ok {
		t.Error("identical selector .c must not be reported")
	}
}

func TestDiff_EndToEnd(t *testing.T) {
	a := buildFromCSS(t, `.btn { color: red; }`)
	b := buildFromCSS(t, `.btn { color: blue; } .link { color: green; }`)

	r := compare.Diff(a, b)
	if len(r.OnlyInA) != 0 {
		t.Errorf("OnlyInA = %v, want empty", r.OnlyInA)
	}
	if !slices.Equal(r.OnlyInB, []string{".link"}) {
		t.Errorf("OnlyInB = %v, want [.link]", r.OnlyInB)
	}
	if !slices.Equal(r.Differing, []string{".btn"}) {
		t.Errorf("Differing = %v, want [.btn]", r.Differing)
	}

	changes := r.Changes[".btn"]
	if len(changes) != 1 || changes[0].Kind != compare.ChangeChanged || changes[0].Old != "red" || changes[0].New != "blue" {
		t.Errorf("unexpected changes for .btn: %+v", changes)
	}
}

func TestDiff_CombinatorWhitespaceMatters(t *testing.T) {
	a := buildFromCSS(t, `.a > .b { color: red; }`)
	b := buildFromCSS(t, `.a>.b { color: red; }`)

	r := compare.Diff(a, b)
	if !slices.Equal(r.OnlyInA, []string{".a > .b"}) {
		t.Errorf("OnlyInA = %q, want [.a > .b]", r.OnlyInA)
	}
	if !slices.Equal(r.OnlyInB, []string{".a>.b"}) {
		t.Errorf("OnlyInB = %q, want [.a>.b]", r.OnlyInB)
	}
	if len(r.Differing) != 0 {
		t.Errorf("Differing = %q, want empty", r.Differing)
	}
}

func TestDiff_EndToEndIdentical(t *testing.T) {
	text := `
		.a, .b { color: red; margin: 0 auto; }
		@media print { .a { display: none; } }
	`
	r := compare.Diff(buildFromCSS(t, text), buildFromCSS(t, text))
	if !r.Empty() {
		t.Errorf("expected no differences, got %+v", r)
	}
}

func TestChanges(t *testing.T) {
	a := css.Declarations{"color": "red", "margin": "0", "padding": "1px"}
	b := css.Declarations{"color": "blue", "margin": "0", "border": "none"}

	got := compare.Changes(a, b)
	want := []compare.Change{
		{Property: "border", Kind: compare.ChangeAdded, New: "none"},
		{Property: "color", Kind: compare.ChangeChanged, Old: "red", New: "blue"},
		{Property: "padding", Kind: compare.ChangeRemoved, Old: "1px"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Changes() = %+v, want %+v", got, want)
	}
}

func TestResult_SortNatural(t *testing.T) {
	r := &compare.Result{
		OnlyInA:   []string{".h10", ".h2", ".h1"},
		OnlyInB:   []string{"b", "a"},
		Differing: []string{},
	}
	r.SortNatural()

	if !slices.Equal(r.OnlyInA, []string{".h1", ".h2", ".h10"}) {
		t.Errorf("OnlyInA = %v", r.OnlyInA)
	}
	if !slices.Equal(r.OnlyInB, []string{"a", "b"}) {
		t.Errorf("OnlyInB = %v", r.OnlyInB)
	}
}
