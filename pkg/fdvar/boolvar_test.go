package fdvar

import (
	"errors"
	"testing"
)

func TestBoolVar_New(t *testing.T) {
	v := NewBoolVar()
	if v.Size() != 2 {
		t.Errorf("Size() = %d, want 2", v.Size())
	}
	if v.IsBound() {
		t.Error("fresh BoolVar should not be bound")
	}
	if _, ok := v.Value(); ok {
		t.Error("Value() should report unbound")
	}
}

func TestBoolVar_SetValue(t *testing.T) {
	t.Run("narrows from undetermined", func(t *testing.T) {
		v := NewBoolVar()
		ch, err := v.SetValue(true)
		if err != nil {
			t.Fatalf("SetValue: %v", err)
		}
		if ch != BothBoundsChange {
			t.Errorf("change = %v, want BothBoundsChange", ch)
		}
		if value, ok := v.Value(); !ok || !value {
			t.Errorf("Value() = %v, %v, want true", value, ok)
		}
		if v.Size() != 1 {
			t.Errorf("Size() = %d, want 1", v.Size())
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		v := NewBoolVar()
		if _, err := v.SetValue(false); err != nil {
			t.Fatalf("first SetValue: %v", err)
		}
		ch, err := v.SetValue(false)
		if err != nil {
			t.Fatalf("second SetValue: %v", err)
		}
		if ch != NoChange {
			t.Errorf("second SetValue = %v, want NoChange", ch)
		}
	})

	t.Run("conflicting value wipes out", func(t *testing.T) {
		v := NewBoolVar()
		if _, err := v.SetValue(true); err != nil {
			t.Fatalf("SetValue: %v", err)
		}
		if _, err := v.SetValue(false); !errors.Is(err, ErrDomainWipeout) {
			t.Fatalf("error = %v, want ErrDomainWipeout", err)
		}
		if v.Size() != 0 {
			t.Errorf("Size() after wipeout = %d, want 0", v.Size())
		}
	})

	t.Run("assignment after wipeout stays wiped", func(t *testing.T) {
		v := NewBoolVar()
		v.SetValue(true)
		v.SetValue(false)
		if _, err := v.SetValue(true); !errors.Is(err, ErrDomainWipeout) {
			t.Fatalf("error = %v, want ErrDomainWipeout", err)
		}
	})
}

func TestBoolVar_Values(t *testing.T) {
	tests := []struct {
		name string
		prep func() *BoolVar
		want []bool
	}{
		{"undetermined", NewBoolVar, []bool{false, true}},
		{"bound true", func() *BoolVar {
			v := NewBoolVar()
			v.SetValue(true)
			return v
		}, []bool{true}},
		{"bound false", func() *BoolVar {
			v := NewBoolVar()
			v.SetValue(false)
			return v
		}, []bool{false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []bool
			for value := range tt.prep().Values() {
				got = append(got, value)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("values = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("values = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestBoolVar_Clone(t *testing.T) {
	v := NewBoolVar()
	c := v.Clone()
	v.SetValue(true)
	if c.IsBound() {
		t.Error("clone must be unaffected by mutation of the original")
	}
}

func TestBoolVar_UnsupportedOperations(t *testing.T) {
	v := NewBoolVar()
	other := NewBoolVar()

	if _, _, err := v.Equal(other); !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("Equal error = %v, want ErrUnsupported", err)
	}
	if _, _, err := v.NotEqual(other); !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("NotEqual error = %v, want ErrUnsupported", err)
	}
	if _, err := v.InValues([]bool{true}); !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("InValues error = %v, want ErrUnsupported", err)
	}
	if _, err := v.RemoveValue(true); !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("RemoveValue error = %v, want ErrUnsupported", err)
	}
	if _, err := v.RemoveIf(func(bool) bool { return true }); !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("RemoveIf error = %v, want ErrUnsupported", err)
	}
	if _, err := v.RetainIf(func(bool) bool { return true }); !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("RetainIf error = %v, want ErrUnsupported", err)
	}
}

func TestBoolVar_String(t *testing.T) {
	v := NewBoolVar()
	if got := v.String(); got != "{true,false}" {
		t.Errorf("String() = %q, want {true,false}", got)
	}
	v.SetValue(true)
	if got := v.String(); got != "true" {
		t.Errorf("String() = %q, want true", got)
	}
	v.SetValue(false)
	if got := v.String(); got != "{}" {
		t.Errorf("String() = %q, want {}", got)
	}
}
