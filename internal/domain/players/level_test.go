package players

import "testing"

func TestLevelFor_ZeroIsLevelOne(t *testing.T) {
	if got := LevelFor(0); got != 1 {
		t.Fatalf("LevelFor(0) = %d, want 1", got)
	}
}

func TestLevelFor_Boundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
		{10000, 11},
	}

	for _, c := range cases {
		if got := LevelFor(c.xp); got != c.want {
			t.Fatalf("LevelFor(%d) = %d, want %d", c.xp, got, c.want)
		}
	}
}

func TestLevelFor_Monotonic(t *testing.T) {
	prev := LevelFor(0)
	for xp := 1; xp <= 5000; xp++ {
		cur := LevelFor(xp)
		if cur < prev {
			t.Fatalf("LevelFor decreased at xp=%d: %d -> %d", xp, prev, cur)
		}
		prev = cur
	}
}

func TestLevelFor_NegativeClampsToZero(t *testing.T) {
	if got := LevelFor(-50); got != 1 {
		t.Fatalf("LevelFor(-50) = %d, want 1", got)
	}
}

func TestAddExperience_DerivesLevel(t *testing.T) {
	p := Player{Experience: 0, Level: 1}

	p.AddExperience(10)
	if p.Experience != 10 || p.Level != 1 {
		t.Fatalf("after +10: xp=%d level=%d, want xp=10 level=1", p.Experience, p.Level)
	}

	p.AddExperience(90)
	if p.Experience != 100 || p.Level != 2 {
		t.Fatalf("after +90: xp=%d level=%d, want xp=100 level=2", p.Experience, p.Level)
	}
}

func TestAddExperience_IgnoresNonPositive(t *testing.T) {
	p := Player{Experience: 50, Level: 1}

	p.AddExperience(0)
	p.AddExperience(-10)

	if p.Experience != 50 {
		t.Fatalf("experience changed on non-positive delta: %d", p.Experience)
	}
}
