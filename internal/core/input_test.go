package core

import (
	"testing"
	"time"
)

func TestKeysCaseInsensitive(t *testing.T) {
	k := NewKeys(0)
	k.Press("ArrowLeft")

	if !k.IsDown("arrowleft") {
		t.Error("IsDown(arrowleft) should be true after Press(ArrowLeft)")
	}
	if !k.IsDown("ARROWLEFT") {
		t.Error("IsDown should ignore case")
	}

	k.Release("ARROWleft")
	if k.IsDown("arrowleft") {
		t.Error("IsDown should be false after Release")
	}
}

func TestKeysHoldWindow(t *testing.T) {
	now := time.Unix(100, 0)
	k := NewKeys(150 * time.Millisecond)
	k.SetClock(func() time.Time { return now })

	k.Press("a")
	if !k.IsDown("a") {
		t.Fatal("key should be down right after press")
	}

	now = now.Add(100 * time.Millisecond)
	if !k.IsDown("a") {
		t.Error("key should still be down inside the hold window")
	}

	now = now.Add(100 * time.Millisecond)
	if k.IsDown("a") {
		t.Error("key should be released after the hold window")
	}

	// Auto-repeat presses keep it alive
	k.Press("a")
	if !k.IsDown("a") {
		t.Error("repeat press should re-arm the key")
	}
}

func TestKeysReset(t *testing.T) {
	k := NewKeys(0)
	k.Press("a")
	k.Press("d")
	k.Reset()

	if AnyDown(k, "a", "d") {
		t.Error("Reset should release all keys")
	}
}

func TestAnyDown(t *testing.T) {
	k := NewKeys(0)
	k.Press("d")

	if !AnyDown(k, "arrowright", "d") {
		t.Error("AnyDown should find d")
	}
	if AnyDown(k, "arrowleft", "a") {
		t.Error("AnyDown should not find left keys")
	}
	if AnyDown(nil, "a") {
		t.Error("AnyDown(nil) should be false")
	}
	if AnyDown(NoInput{}, "a") {
		t.Error("NoInput should report nothing held")
	}
}

func TestRoundTransitions(t *testing.T) {
	tests := []struct {
		from, to RoundState
		ok       bool
	}{
		{RoundNotStarted, RoundRunning, true},
		{RoundRunning, RoundOver, true},
		{RoundOver, RoundNotStarted, true},
		{RoundNotStarted, RoundOver, false},
		{RoundRunning, RoundNotStarted, false},
		{RoundOver, RoundRunning, false},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			if got := tc.from.CanTransition(tc.to); got != tc.ok {
				t.Errorf("CanTransition() = %v, expected %v", got, tc.ok)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"cyan", ColorCyan, false},
		{"Magenta", ColorMagenta, false},
		{" orange ", ColorOrange, false},
		{"grey", ColorGray, false},
		{"seagreen", ColorSeaGreen, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}
