package steps

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNewCopiesSteps(t *testing.T) {
	in := []string{"a", "b"}
	tr := New(1, in...)
	in[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, tr.Steps())

	out := tr.Steps()
	out[1] = "changed"
	assert.Equal(t, []string{"a", "b"}, tr.Steps())
}

func TestMap(t *testing.T) {
	tr := New(2, "start")
	mapped := tr.Map(func(v int) int { return v * 10 }, func() []string {
		return []string{"times ten"}
	})

	assert.Equal(t, 20, mapped.Result())
	assert.Equal(t, []string{"start", "times ten"}, mapped.Steps())
	// the source trace is untouched
	assert.Equal(t, 2, tr.Result())
	assert.Equal(t, []string{"start"}, tr.Steps())
}

func TestAppendPrepend(t *testing.T) {
	base := New("x", "middle")
	got := base.Append("after").Prepend("before")

	if diff := cmp.Diff([]string{"before", "middle", "after"}, got.Steps()); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, base.Len())
}

func TestBranchesDoNotShareSteps(t *testing.T) {
	base := New(0, "one", "two").Append("three")
	left := base.Append("left")
	right := base.Append("right")

	assert.Equal(t, []string{"one", "two", "three", "left"}, left.Steps())
	assert.Equal(t, []string{"one", "two", "three", "right"}, right.Steps())
}

func TestAlignOn(t *testing.T) {
	tr := New(1234,
		"+ 4 * 256 to 0",
		"+ 13 * 16 to 1024",
		"+ 2 * 1 to 1232",
	)
	want := "+ 4  * 256 to 0\n" +
		"+ 13 * 16 to 1024\n" +
		"+ 2  * 1 to 1232"
	assert.Equal(t, want, tr.AlignOn("*"))
}

func TestAlignOnLeavesLinesWithoutMarker(t *testing.T) {
	text := "header\n1 / 2 = 0 R 1\n10 / 2 = 5 R 0\n\nfooter"
	want := "header\n1  / 2 = 0 R 1\n10 / 2 = 5 R 0\n\nfooter"
	assert.Equal(t, want, AlignOn(text, "/"))

	assert.Equal(t, "no markers\nhere", AlignOn("no markers\nhere", "*"))
}

func TestAligned(t *testing.T) {
	tr := New("", "5 / 2 = 2 R 1", "2 / 2 = 1 R 0", "1 / 2 = 0 R 1").
		Aligned("/").
		Aligned("R ")
	want := []string{
		"5 / 2 = 2 R 1",
		"2 / 2 = 1 R 0",
		"1 / 2 = 0 R 1",
	}
	assert.Equal(t, want, tr.Steps())

	wide := New("", "10 / 2 = 5 R 0", "5 / 2 = 2 R 1").Aligned("/").Aligned("R ")
	assert.Equal(t, []string{"10 / 2 = 5 R 0", "5  / 2 = 2 R 1"}, wide.Steps())

	empty := New(0).Aligned("*")
	assert.Equal(t, 0, empty.Len())
}

func TestAlignedSplitsMultilineSteps(t *testing.T) {
	tr := New(0, "title\n", "a * b").Aligned("*")
	assert.Equal(t, []string{"title", "", "a * b"}, tr.Steps())
}

func TestRender(t *testing.T) {
	tr := New(strconv.Itoa(42), "step one", "step two")
	assert.Equal(t, "step one\nstep two\n\nYielding result: 42", tr.Render())
}
