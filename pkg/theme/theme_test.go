package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/weftui/weft/pkg/ui"
)

var themeCmp = cmp.Options{cmpopts.EquateComparable(
	ui.TrueColor(0, 0, 0), ui.XTerm256Color(0), ui.Black, ui.BrightBlack)}

func TestFromString(t *testing.T) {
	got, err := FromString(`
view:
  fg: white
  bg: blue
highlight:
  fg: black
  bg: bright-white
  bold: true
`)
	if err != nil {
		t.Fatalf("FromString -> error %v, want nil", err)
	}
	want := Default()
	want.View = ui.Style{Foreground: ui.White, Background: ui.Blue}
	want.Highlight = ui.Style{
		Foreground: ui.Black, Background: ui.BrightWhite, Bold: true}
	if diff := cmp.Diff(want, got, themeCmp); diff != "" {
		t.Errorf("theme (-want +got):\n%s", diff)
	}
}

func TestFromString_Empty(t *testing.T) {
	got, err := FromString("")
	if err != nil {
		t.Fatalf("FromString -> error %v, want nil", err)
	}
	if diff := cmp.Diff(Default(), got, themeCmp); diff != "" {
		t.Errorf("theme (-want +got):\n%s", diff)
	}
}

var fromStringBadTests = []struct {
	name string
	text string
}{
	{"bad yaml", "view: ["},
	{"bad color name", "view:\n  fg: chartreuse"},
	{"bad bg color", "shadow:\n  bg: '#12345'"},
}

func TestFromString_BadInput(t *testing.T) {
	for _, test := range fromStringBadTests {
		t.Run(test.name, func(t *testing.T) {
			got, err := FromString(test.text)
			var perr ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("got err %v, want a ParseError", err)
			}
			// The default theme comes back so that the caller's current
			// theme is never replaced by a half-parsed one.
			if diff := cmp.Diff(Default(), got, themeCmp); diff != "" {
				t.Errorf("theme (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(name, []byte("view:\n  bg: red"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := FromFile(name)
	if err != nil {
		t.Fatalf("FromFile -> error %v, want nil", err)
	}
	if diff := cmp.Diff(ui.Red, got.View.Background, themeCmp); diff != "" {
		t.Errorf("view background (-want +got):\n%s", diff)
	}
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "no-such-theme.yaml"))
	if err == nil {
		t.Errorf("FromFile on a missing file -> nil error, want non-nil")
	}
	var perr ParseError
	if errors.As(err, &perr) {
		t.Errorf("got a ParseError for an I/O failure: %v", err)
	}
}
