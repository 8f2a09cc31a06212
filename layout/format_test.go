// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gioui.org/autolayout/f32"
)

func formatEquations(t *testing.T, format string, views ...View) []string {
	t.Helper()
	p, _, _, _ := newTestPin()
	cs, err := Format(p, format, views...)
	if err != nil {
		t.Fatalf("Format(%q): %v", format, err)
	}
	var eqs []string
	for _, c := range cs {
		eqs = append(eqs, c.Equation().String()+" @"+c.Priority().String())
	}
	return eqs
}

func TestFormat(t *testing.T) {
	dst := &testView{Name: "dst", Size: f32.Pt(200, 100)}
	tests := []struct {
		format string
		want   []string
	}{
		{"", nil},
		{"edges(_, 8, safe)", []string{
			"src.top == dst.safe.top + 8 @1000",
			"src.bottom == dst.safe.bottom - 8 @1000",
			"src.left == dst.safe.left + 8 @1000",
			"src.right == dst.safe.right - 8 @1000",
		}},
		{"hedges(_) height(44)", []string{
			"src.left == dst.left @1000",
			"src.right == dst.right @1000",
			"src.height == 44 @1000",
		}},
		{"top(_.bottom, 12, >=, @750)", []string{"src.top >= dst.bottom + 12 @750"}},
		{"right(_.left, 4)", []string{"src.right == dst.left - 4 @1000"}},
		{"bottom(_.center)", []string{"src.bottom == dst.centerY @1000"}},
		{"width(_, *0.5, 10)", []string{"src.width == dst.width*0.5 + 10 @1000"}},
		{"height(_.width, <=)", []string{"src.height <= dst.width @1000"}},
		{"size(_)", []string{"src.width == dst.width @1000", "src.height == dst.height @1000"}},
		{"size(32, @250)", []string{"src.width == 32 @250", "src.height == 32 @250"}},
		{"aspect(2)", []string{"src.width == src.height*2 @1000"}},
		{"heightratio(0.5)", []string{"src.height == src.width*0.5 @1000"}},
		{"centerx(_, -3) centery(_)", []string{"src.centerX == dst.centerX - 3 @1000", "src.centerY == dst.centerY @1000"}},
		{"center(_)", []string{"src.centerX == dst.centerX @1000", "src.centerY == dst.centerY @1000"}},
		{"at(top, _, 0.25)", []string{"src.top == dst.centerY*0.5 @1000"}},
		{"centerat(_, 100, 50)", []string{"src.centerY == dst.centerY @1000", "src.centerX == dst.centerX @1000"}},
	}
	for _, tc := range tests {
		var views []View
		if n := strings.Count(tc.format, "_"); n > 0 {
			for i := 0; i < n; i++ {
				views = append(views, dst)
			}
		}
		got := formatEquations(t, tc.format, views...)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Format(%q) (-want +got):\n%s", tc.format, diff)
		}
	}
}

func TestFormatViewOrder(t *testing.T) {
	a := &testView{Name: "a"}
	b := &testView{Name: "b"}
	got := formatEquations(t, "top(_.bottom) left(_)", a, b)
	want := []string{"src.top == a.bottom @1000", "src.left == b.left @1000"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFormatErrors(t *testing.T) {
	dst := &testView{Name: "dst"}
	tests := []struct {
		format string
		views  []View
		msg    string
	}{
		{"top(_", []View{dst}, "unexpected end"},
		{"top(_.left)", []View{dst}, "cannot pin top to left"},
		{"top(_.middle)", []View{dst}, `invalid edge "middle"`},
		{"wobble(_)", []View{dst}, `invalid call "wobble"`},
		{"top(_) left(_)", []View{dst}, "view index 1 out of bounds [0;0]"},
		{"top(_)", []View{dst, dst}, "1 unused views"},
		{"width()", nil, "width needs a view or a constant"},
		{"top(8)", nil, "missing view"},
		{"top(_, 1, 2)", []View{dst}, "too many numbers"},
		{"top(_, loud)", []View{dst}, `unexpected argument "loud"`},
		{"top(_, =!)", []View{dst}, `invalid relation "=!"`},
		{"at(middle, _, 0.5)", []View{dst}, `invalid edge "middle"`},
		{"Top(_)", []View{dst}, "invalid character 'T' in name"},
		{"top(_ ()", []View{dst}, "unexpected '('"},
		{"top(_,,)", []View{dst}, "unexpected ','"},
		{"top(_, *2)", []View{dst}, "top takes no multiplier"},
		{"left(_.center, safe)", []View{dst}, "left(_.center) has no safe variant"},
		{"edges(_.width)", []View{dst}, `edges takes no attribute, got "width"`},
		{"hedges(_, *0.5)", []View{dst}, "hedges takes no multiplier"},
		{"width(_, safe)", []View{dst}, "width has no safe variant"},
		{"width(10, *2)", nil, "width takes no multiplier"},
		{"size(_.height)", []View{dst}, `size takes no attribute, got "height"`},
		{"size(8, safe)", nil, "size has no safe variant"},
		{"aspect(2, *3)", nil, "aspect takes no multiplier"},
		{"heightratio(_)", []View{dst}, "heightratio takes no view"},
		{"centerx(_.centery)", []View{dst}, `centerx takes no attribute, got "centery"`},
		{"center(_, safe)", []View{dst}, "center has no safe variant"},
		{"centerat(_, 1, 2, >=)", []View{dst}, "centerat takes no relation"},
		{"at(top, _, 0.5, <=)", []View{dst}, "at takes no relation"},
		{"at(top, _.bottom, 0.5)", []View{dst}, `at takes no attribute, got "bottom"`},
	}
	for _, tc := range tests {
		p, _, _, _ := newTestPin()
		_, err := Format(p, tc.format, tc.views...)
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Errorf("Format(%q): got error %v, want a *FormatError", tc.format, err)
			continue
		}
		if ferr.Msg != tc.msg {
			t.Errorf("Format(%q): message %q, want %q", tc.format, ferr.Msg, tc.msg)
		}
		if !strings.Contains(ferr.Format, "✗") {
			t.Errorf("Format(%q): position not marked in %q", tc.format, ferr.Format)
		}
	}
}

func TestFormatActivationError(t *testing.T) {
	p, e, _, dst := newTestPin()
	e.fail = ErrUnsolvable
	e.failAt = 1
	cs, err := Format(p, "height(10) top(_) left(_)", dst, dst)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("got error %v, want ErrUnsolvable", err)
	}
	if len(cs) != 1 {
		t.Errorf("got %d constraints, want the 1 activated before the failure", len(cs))
	}
}
