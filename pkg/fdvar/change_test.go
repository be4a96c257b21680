package fdvar

import "testing"

var allChanges = []Change{
	NoChange,
	MinBoundChange,
	MaxBoundChange,
	BothBoundsChange,
	ValuesChange,
	UniversalChange,
	UniversalError,
}

func TestChange_Merge(t *testing.T) {
	tests := []struct {
		a, b, want Change
	}{
		// NoChange is neutral.
		{NoChange, NoChange, NoChange},
		{NoChange, MinBoundChange, MinBoundChange},
		{NoChange, MaxBoundChange, MaxBoundChange},
		{NoChange, BothBoundsChange, BothBoundsChange},
		{NoChange, ValuesChange, ValuesChange},
		{NoChange, UniversalChange, UniversalChange},
		{NoChange, UniversalError, UniversalError},
		// Bound changes.
		{MinBoundChange, MinBoundChange, MinBoundChange},
		{MaxBoundChange, MaxBoundChange, MaxBoundChange},
		{MinBoundChange, MaxBoundChange, BothBoundsChange},
		{MinBoundChange, BothBoundsChange, BothBoundsChange},
		{MaxBoundChange, BothBoundsChange, BothBoundsChange},
		{BothBoundsChange, BothBoundsChange, BothBoundsChange},
		// ValuesChange absorbs every concrete classification.
		{ValuesChange, MinBoundChange, ValuesChange},
		{ValuesChange, MaxBoundChange, ValuesChange},
		{ValuesChange, BothBoundsChange, ValuesChange},
		{ValuesChange, ValuesChange, ValuesChange},
		// Universal mixing.
		{UniversalChange, UniversalChange, UniversalChange},
		{UniversalChange, MinBoundChange, UniversalError},
		{UniversalChange, MaxBoundChange, UniversalError},
		{UniversalChange, BothBoundsChange, UniversalError},
		{UniversalChange, ValuesChange, UniversalError},
		{UniversalChange, UniversalError, UniversalError},
		{UniversalError, MinBoundChange, UniversalError},
		{UniversalError, ValuesChange, UniversalError},
		{UniversalError, UniversalError, UniversalError},
	}

	for _, tt := range tests {
		if got := tt.a.Merge(tt.b); got != tt.want {
			t.Errorf("Merge(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestChange_MergeCommutative(t *testing.T) {
	for _, a := range allChanges {
		for _, b := range allChanges {
			if a.Merge(b) != b.Merge(a) {
				t.Errorf("Merge(%v, %v) = %v but Merge(%v, %v) = %v",
					a, b, a.Merge(b), b, a, b.Merge(a))
			}
		}
	}
}

func TestChange_MergeIdentity(t *testing.T) {
	for _, c := range allChanges {
		if got := NoChange.Merge(c); got != c {
			t.Errorf("Merge(NoChange, %v) = %v, want %v", c, got, c)
		}
	}
}

func TestChange_MergeAssociative(t *testing.T) {
	for _, a := range allChanges {
		for _, b := range allChanges {
			for _, c := range allChanges {
				left := a.Merge(b).Merge(c)
				right := a.Merge(b.Merge(c))
				if left != right {
					t.Errorf("(%v+%v)+%v = %v but %v+(%v+%v) = %v",
						a, b, c, left, a, b, c, right)
				}
			}
		}
	}
}

func TestChange_Subsumes(t *testing.T) {
	tests := []struct {
		name string
		a, b Change
		want bool
	}{
		{"min under itself", MinBoundChange, MinBoundChange, true},
		{"min under both bounds", MinBoundChange, BothBoundsChange, true},
		{"min not under max", MinBoundChange, MaxBoundChange, false},
		{"min not under values", MinBoundChange, ValuesChange, false},
		{"max under itself", MaxBoundChange, MaxBoundChange, true},
		{"max under both bounds", MaxBoundChange, BothBoundsChange, true},
		{"max not under min", MaxBoundChange, MinBoundChange, false},
		{"both bounds under values", BothBoundsChange, ValuesChange, true},
		{"both bounds not under min", BothBoundsChange, MinBoundChange, false},
		{"values under values", ValuesChange, ValuesChange, true},
		{"values not under no change", ValuesChange, NoChange, false},
		{"no change under everything", NoChange, MinBoundChange, true},
		{"no change under itself", NoChange, NoChange, true},
		{"universal never subsumed", UniversalChange, UniversalChange, false},
		{"universal error never subsumed", UniversalError, UniversalError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Subsumes(tt.b); got != tt.want {
				t.Errorf("%v.Subsumes(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestChange_UniversalMixing(t *testing.T) {
	concrete := []Change{MinBoundChange, MaxBoundChange, BothBoundsChange, ValuesChange}
	for _, c := range concrete {
		if got := UniversalChange.Merge(c); got != UniversalError {
			t.Errorf("Merge(UniversalChange, %v) = %v, want UniversalError", c, got)
		}
		if got := c.Merge(UniversalChange); got != UniversalError {
			t.Errorf("Merge(%v, UniversalChange) = %v, want UniversalError", c, got)
		}
	}
}

func TestChange_String(t *testing.T) {
	for _, c := range allChanges {
		if s := c.String(); s == "" || s == "Change(?)" {
			t.Errorf("String() for %d = %q", uint8(c), s)
		}
	}
	if s := Change(99).String(); s != "Change(?)" {
		t.Errorf("String() for unknown value = %q, want Change(?)", s)
	}
}
