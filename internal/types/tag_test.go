package types

import "testing"

func TestTagOrdering(t *testing.T) {
	ordered := []Tag{
		None, Void, Boolean, Byte, Char, Int, Long, Float, Double,
		Null, UserDefined, String, Function, Instance, Class,
	}
	for i := 1; i < len(ordered); i++ {
		if !(ordered[i-1] < ordered[i]) {
			t.Errorf("%s should be < %s under the fixed ordering", ordered[i-1], ordered[i])
		}
	}
}

func TestIsNumberBand(t *testing.T) {
	numbers := []Tag{Byte, Char, Int, Long, Float, Double}
	for _, tag := range numbers {
		if !tag.IsNumber() {
			t.Errorf("%s should be in the number band", tag)
		}
	}
	nonNumbers := []Tag{None, Void, Boolean, Null, UserDefined, String, Function, Instance, Class}
	for _, tag := range nonNumbers {
		if tag.IsNumber() {
			t.Errorf("%s should not be in the number band", tag)
		}
	}
}

func TestIsWholeNumberBand(t *testing.T) {
	whole := []Tag{Byte, Char, Int, Long}
	for _, tag := range whole {
		if !tag.IsWholeNumber() {
			t.Errorf("%s should be a whole number", tag)
		}
	}
	notWhole := []Tag{Float, Double, Boolean}
	for _, tag := range notWhole {
		if tag.IsWholeNumber() {
			t.Errorf("%s should not be a whole number", tag)
		}
	}
}

func TestBiggerAndSmaller(t *testing.T) {
	if Bigger(Int, Long) != Long {
		t.Errorf("Bigger(Int, Long) = %s, want Long", Bigger(Int, Long))
	}
	if Bigger(Double, Float) != Double {
		t.Errorf("Bigger(Double, Float) = %s, want Double", Bigger(Double, Float))
	}
	if Smaller(Int, Long) != Int {
		t.Errorf("Smaller(Int, Long) = %s, want Int", Smaller(Int, Long))
	}
	if Bigger(Byte, Byte) != Byte {
		t.Errorf("Bigger(Byte, Byte) = %s, want Byte (equal tags)", Bigger(Byte, Byte))
	}
}

func TestVisibilityString(t *testing.T) {
	tests := []struct {
		v    Visibility
		want string
	}{
		{VisibilityNone, "none"},
		{VisibilityLocal, "local"},
		{VisibilityPrivate, "private"},
		{VisibilityProtected, "protected"},
		{VisibilityPackage, "package"},
		{VisibilityPublic, "public"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Visibility(%d).String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestTagStringUnknown(t *testing.T) {
	var t2 Tag = 999
	if got := t2.String(); got != "unknown" {
		t.Errorf("unknown Tag.String() = %q, want %q", got, "unknown")
	}
}
