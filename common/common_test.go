package common

import "testing"

func TestConvertKeyLabel(t *testing.T) {
	tests := []struct {
		label string
		want  uint32
		ok    bool
	}{
		{"A", KeyA, true},
		{"a", KeyA, true},
		{" d ", KeyD, true},
		{"3", Key3, true},
		{"F3", KeyF3, true},
		{"f9", KeyF9, true},
		{"Space", KeySpace, true},
		{"ESC", KeyEsc, true},
		{"Escape", KeyEsc, true},
		{"", 0, false},
		{"?", 0, false},
		{"SuperHyper", 0, false},
	}

	for _, tt := range tests {
		got, ok := ConvertKeyLabel(tt.label)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ConvertKeyLabel(%q) = (%d, %v), want (%d, %v)", tt.label, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5.0, 0.0, 10.0); got != 5.0 {
		t.Errorf("Clamp(5, 0, 10) = %v, want 5", got)
	}
	if got := Clamp(-1.0, 0.0, 10.0); got != 0.0 {
		t.Errorf("Clamp(-1, 0, 10) = %v, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %v, want 10", got)
	}
	if got := Clamp(float32(101.7), 0, 100); got != 100 {
		t.Errorf("Clamp(101.7, 0, 100) = %v, want 100", got)
	}
}

func TestMul4Identity(t *testing.T) {
	var id, m, out [16]float32
	Identity(id[:])
	for i := range m {
		m[i] = float32(i + 1)
	}

	Mul4(out[:], id[:], m[:])
	if out != m {
		t.Errorf("I * M = %v, want %v", out, m)
	}
	Mul4(out[:], m[:], id[:])
	if out != m {
		t.Errorf("M * I = %v, want %v", out, m)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "fallback"); got != "fallback" {
		t.Errorf("Coalesce(\"\", fallback) = %q", got)
	}
	if got := Coalesce("value", "fallback"); got != "value" {
		t.Errorf("Coalesce(value, fallback) = %q", got)
	}
	if got := Coalesce(0, 7); got != 7 {
		t.Errorf("Coalesce(0, 7) = %v", got)
	}
}
