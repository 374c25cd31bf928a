package depeval

import (
	"math"
	"strings"
	"testing"
)

func TestConfusion_InsertCounts(t *testing.T) {
	c := NewConfusion[string]("Deprels")
	c.Insert("nsubj", "nsubj")
	c.Insert("obj", "nsubj")
	c.Insert("obj", "obj")

	tests := []struct {
		gold string
		pred string
		want int
	}{
		{"nsubj", "nsubj", 1},
		{"obj", "nsubj", 1},
		{"obj", "obj", 1},
		{"nsubj", "obj", 0},
	}

	for _, tt := range tests {
		if got := c.Count(tt.gold, tt.pred); got != tt.want {
			t.Errorf("Count(%q, %q) = %d, want %d", tt.gold, tt.pred, got, tt.want)
		}
	}

	if c.Numberer().Len() != 2 {
		t.Errorf("Numberer().Len() = %d, want 2", c.Numberer().Len())
	}
	if len(c.counts) != 2 {
		t.Errorf("matrix dimension = %d, want 2", len(c.counts))
	}
}

func TestConfusion_GrowTo(t *testing.T) {
	c := NewConfusion[string]("Deprels")
	c.Insert("a", "b")
	c.Insert("a", "a")

	c.growTo(5)

	if len(c.counts) != 5 {
		t.Fatalf("dimension = %d after growTo(5), want 5", len(c.counts))
	}
	for i, row := range c.counts {
		if len(row) != 5 {
			t.Fatalf("row %d has %d cells, want 5", i, len(row))
		}
	}

	// Existing counts keep their cells, everything else is zero.
	for i, row := range c.counts {
		for j, n := range row {
			want := 0
			if i == 0 && (j == 0 || j == 1) {
				want = 1
			}
			if n != want {
				t.Errorf("counts[%d][%d] = %d, want %d", i, j, n, want)
			}
		}
	}
}

func TestConfusion_GrowToNeverShrinks(t *testing.T) {
	c := NewConfusion[string]("Deprels")
	c.Insert("a", "b")

	c.growTo(0)

	if len(c.counts) != 2 {
		t.Errorf("dimension = %d after growTo(0), want 2", len(c.counts))
	}
}

func TestConfusion_GrowthPreservesHistory(t *testing.T) {
	c := NewConfusion[string]("Deprels")
	c.Insert("nsubj", "nsubj")
	c.Insert("nsubj", "nsubj")
	c.Insert("nsubj", "obj")

	// New classes must not disturb recorded counts.
	c.Insert("punct", "det")

	if got := c.Count("nsubj", "nsubj"); got != 2 {
		t.Errorf("Count(nsubj, nsubj) = %d after growth, want 2", got)
	}
	if got := c.Count("nsubj", "obj"); got != 1 {
		t.Errorf("Count(nsubj, obj) = %d after growth, want 1", got)
	}
	if got := c.Count("punct", "det"); got != 1 {
		t.Errorf("Count(punct, det) = %d, want 1", got)
	}
	if len(c.counts) != 4 {
		t.Errorf("matrix dimension = %d, want 4", len(c.counts))
	}
}

func TestConfusion_ExternalNumbering(t *testing.T) {
	c := NewConfusion[string]("Deprels")
	c.Insert("nsubj", "obj")

	// Numbering a class through the exposed Numberer must not
	// desynchronize cell lookups or rendering.
	c.Numberer().Number("det")

	if got := c.Count("det", "nsubj"); got != 0 {
		t.Errorf("Count(det, nsubj) = %d, want 0", got)
	}
	if got := c.Count("nsubj", "det"); got != 0 {
		t.Errorf("Count(nsubj, det) = %d, want 0", got)
	}
	if got := c.Count("nsubj", "obj"); got != 1 {
		t.Errorf("Count(nsubj, obj) = %d, want 1", got)
	}

	var sb strings.Builder
	if err := c.WriteAccuracies(&sb); err != nil {
		t.Fatalf("WriteAccuracies() failed: %v", err)
	}
	if !strings.Contains(sb.String(), "det\t0\tNaN\n") {
		t.Errorf("accuracies lack a zero row for det: %q", sb.String())
	}

	c.Numberer().Number("punct")
	if !strings.Contains(c.String(), "punct") {
		t.Errorf("table lacks the punct class: %q", c.String())
	}
}

func TestConfusion_InsertOrderIndependent(t *testing.T) {
	a := NewConfusion[string]("Deprels")
	a.Insert("nsubj", "obj")
	a.Insert("det", "punct")

	b := NewConfusion[string]("Deprels")
	b.Insert("det", "punct")
	b.Insert("nsubj", "obj")

	pairs := [][2]string{
		{"nsubj", "obj"},
		{"det", "punct"},
		{"nsubj", "punct"},
		{"det", "obj"},
	}
	for _, p := range pairs {
		if a.Count(p[0], p[1]) != b.Count(p[0], p[1]) {
			t.Errorf("Count(%q, %q) differs with insertion order: %d vs %d",
				p[0], p[1], a.Count(p[0], p[1]), b.Count(p[0], p[1]))
		}
	}
}

func TestConfusion_Accuracy(t *testing.T) {
	c := NewConfusion[string]("Deprels")
	c.Insert("nsubj", "nsubj")
	c.Insert("obj", "nsubj")
	c.Insert("obj", "obj")

	got := c.Accuracy()
	want := 2.0 / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Accuracy() = %v, want %v", got, want)
	}
	if got < 0 || got > 1 {
		t.Errorf("Accuracy() = %v, want within [0, 1]", got)
	}
}

func TestConfusion_AccuracyEmpty(t *testing.T) {
	c := NewConfusion[string]("Deprels")
	if got := c.Accuracy(); !math.IsNaN(got) {
		t.Errorf("Accuracy() on empty matrix = %v, want NaN", got)
	}
}

func TestConfusion_WriteAccuracies(t *testing.T) {
	c := NewConfusion[string]("Deprels")
	c.Insert("nsubj", "nsubj")
	c.Insert("nsubj", "obj")

	var sb strings.Builder
	if err := c.WriteAccuracies(&sb); err != nil {
		t.Fatalf("WriteAccuracies() failed: %v", err)
	}

	// "obj" is never a gold class, so its row total is zero and its
	// accuracy is NaN rather than an error.
	want := "nsubj\t2\t0.5000\n" +
		"obj\t0\tNaN\n"
	if sb.String() != want {
		t.Errorf("WriteAccuracies() = %q, want %q", sb.String(), want)
	}
}

func TestConfusion_WriteTable(t *testing.T) {
	c := NewConfusion[string]("Deprels")
	c.Insert("nsubj", "nsubj")
	c.Insert("obj", "nsubj")
	c.Insert("obj", "obj")

	var sb strings.Builder
	if err := c.WriteTable(&sb); err != nil {
		t.Fatalf("WriteTable() failed: %v", err)
	}

	want := "Deprels\tnsubj\tobj\n" +
		"nsubj\t1\t0\t1.0000\n" +
		"obj\t1\t1\t0.5000\n" +
		"\t____\t____\n" +
		"\t0.5000\t1.0000\n" +
		"acc: 0.6667\n"
	if sb.String() != want {
		t.Errorf("WriteTable() = %q, want %q", sb.String(), want)
	}
}

func TestConfusion_WriteCounts(t *testing.T) {
	c := NewConfusion[string]("Deprels")
	c.Insert("nsubj", "nsubj")
	c.Insert("obj", "nsubj")
	c.Insert("obj", "obj")

	var sb strings.Builder
	if err := c.WriteCounts(&sb, ","); err != nil {
		t.Fatalf("WriteCounts() failed: %v", err)
	}

	want := "nsubj,obj\n" +
		"1,0\n" +
		"1,1\n"
	if sb.String() != want {
		t.Errorf("WriteCounts() = %q, want %q", sb.String(), want)
	}
}

func TestConfusion_String(t *testing.T) {
	c := NewConfusion[string]("Deprels")
	c.Insert("nsubj", "nsubj")

	var sb strings.Builder
	if err := c.WriteTable(&sb); err != nil {
		t.Fatalf("WriteTable() failed: %v", err)
	}

	if c.String() != sb.String() {
		t.Errorf("String() = %q, want %q", c.String(), sb.String())
	}
}

func TestConfusion_IntClasses(t *testing.T) {
	c := NewConfusion[int]("Dists")
	c.Insert(1, 1)
	c.Insert(2, 2)
	c.Insert(1, 0)

	var sb strings.Builder
	if err := c.WriteTable(&sb); err != nil {
		t.Fatalf("WriteTable() failed: %v", err)
	}

	// Classes appear in first-seen order: 1, 2, 0.
	want := "Dists\t1\t2\t0\n" +
		"1\t1\t0\t1\t0.5000\n" +
		"2\t0\t1\t0\t1.0000\n" +
		"0\t0\t0\t0\tNaN\n" +
		"\t____\t____\t____\n" +
		"\t1.0000\t1.0000\t0.0000\n" +
		"acc: 0.6667\n"
	if sb.String() != want {
		t.Errorf("WriteTable() = %q, want %q", sb.String(), want)
	}
}

func TestConfusion_CountUnseen(t *testing.T) {
	c := NewConfusion[string]("Deprels")
	if got := c.Count("nsubj", "obj"); got != 0 {
		t.Errorf("Count() on empty matrix = %d, want 0", got)
	}

	c.Insert("nsubj", "nsubj")
	if got := c.Count("nsubj", "missing"); got != 0 {
		t.Errorf("Count() with unseen predicted class = %d, want 0", got)
	}
}
