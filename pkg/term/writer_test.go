package term

import (
	"strings"
	"testing"

	"github.com/weftui/weft/pkg/ui"
)

func TestWriter(t *testing.T) {
	sb := &strings.Builder{}
	testOutput := func(want string) {
		t.Helper()
		if sb.String() != want {
			t.Errorf("got %q, want %q", sb.String(), want)
		}
		sb.Reset()
	}

	w := NewWriter(sb)

	// The first update repaints every row.
	b := NewBuffer(3, 2)
	b.WriteText(0, 0, "ab", ui.Style{})
	w.UpdateBuffer(b, false)
	testOutput(hideCursor + "\033[1;1Hab " + "\033[2;1H   ")

	// A delta update only repaints changed rows.
	b2 := NewBuffer(3, 2)
	b2.WriteText(0, 0, "ab", ui.Style{})
	b2.WriteText(0, 1, "x", ui.Style{})
	w.UpdateBuffer(b2, false)
	testOutput(hideCursor + "\033[2;1Hx  ")

	// A full refresh repaints unchanged rows too.
	w.UpdateBuffer(b2, true)
	testOutput(hideCursor + "\033[1;1Hab " + "\033[2;1Hx  ")

	// After ResetBuffer the next update repaints every row.
	w.ResetBuffer()
	w.UpdateBuffer(b2, false)
	testOutput(hideCursor + "\033[1;1Hab " + "\033[2;1Hx  ")
}

func TestWriter_Styles(t *testing.T) {
	sb := &strings.Builder{}
	w := NewWriter(sb)

	b := NewBuffer(2, 1)
	b.WriteText(0, 0, "a", ui.Style{Bold: true})
	w.UpdateBuffer(b, false)
	got := sb.String()
	want := hideCursor + "\033[1;1H" + "\033[0;1ma" + "\033[0;m "
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriter_SizeChangeForcesFullRepaint(t *testing.T) {
	sb := &strings.Builder{}
	w := NewWriter(sb)

	w.UpdateBuffer(NewBuffer(2, 1), false)
	sb.Reset()
	w.UpdateBuffer(NewBuffer(3, 1), false)
	if got, want := sb.String(), hideCursor+"\033[1;1H   "; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriter_ClearScreen(t *testing.T) {
	sb := &strings.Builder{}
	w := NewWriter(sb)

	b := NewBuffer(2, 1)
	w.UpdateBuffer(b, false)
	sb.Reset()

	w.ClearScreen()
	if got, want := sb.String(), "\033[H\033[2J"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	sb.Reset()

	// The cleared screen holds nothing, so the next update repaints every
	// row even without fullRefresh.
	w.UpdateBuffer(b, false)
	if got, want := sb.String(), hideCursor+"\033[1;1H  "; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
