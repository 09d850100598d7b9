package formatter

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/avl"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

func TestOutputSideways(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tree := avl.NewOrdered[int]()
	for _, x := range []int{2, 1, 3} {
		tree.Insert(x)
	}
	config := &Config{
		LineWidth: 40,
		Indent:    2,
		Context:   uax11.LatinContext,
	}
	var b strings.Builder
	if err := Output(tree, &b, config); err != nil {
		t.Fatal(err)
	}
	want := "  3 [h=1 b=0]\n2 [h=2 b=0]\n  1 [h=1 b=0]\n"
	if b.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestOutputTruncatesLabels(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := avl.NewOrdered[string]()
	tree.Insert("hello wonderful world")
	config := &Config{LineWidth: 20}
	var b strings.Builder
	if err := Output(tree, &b, config); err != nil {
		t.Fatal(err)
	}
	if b.String() != "hello won… [h=1 b=0]\n" {
		t.Errorf("unexpected output: %q", b.String())
	}
	if config.Context != uax11.LatinContext {
		t.Errorf("expected Output to default to Latin context")
	}
}

func TestOutputWithColors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	noColor := color.NoColor
	color.NoColor = true // keep output free of escape codes
	defer func() { color.NoColor = noColor }()
	tree := avl.NewOrdered[int]()
	for x := range 5 {
		tree.Insert(x)
	}
	var b strings.Builder
	if err := Output(tree, &b, &Config{LineWidth: 60, Colors: true}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, have %d:\n%s", len(lines), b.String())
	}
	if !strings.HasPrefix(lines[len(lines)-1], "    0 [") {
		t.Errorf("expected smallest element at bottom, one level deep: %q", lines[len(lines)-1])
	}
}

func TestOutputRejectsNil(t *testing.T) {
	var b strings.Builder
	if err := Output[int](nil, &b, &Config{}); err == nil {
		t.Errorf("expected error for nil tree")
	}
	if err := Output(avl.NewOrdered[int](), &b, nil); err == nil {
		t.Errorf("expected error for nil config")
	}
}

func TestTruncate(t *testing.T) {
	ctx := uax11.LatinContext
	for _, c := range []struct {
		in    string
		width int
		want  string
	}{
		{"abcdefgh", 5, "abcd…"},
		{"abc", 5, "abc"},
		{"abc", 1, "…"},
		{"abc", 0, "abc"},
	} {
		if got := truncate(c.in, c.width, ctx); got != c.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", c.in, c.width, got, c.want)
		}
	}
}
