package safety

import (
	"strings"
	"testing"
)

func TestIsCrisis(t *testing.T) {
	v := NewValidator(true)
	cases := []struct {
		message string
		want    bool
	}{
		{"I just want to die, nothing matters", true},
		{"sometimes I think about ending my life", true},
		{"thinking of hurting myself tonight", true},
		{"my deadline is killing me", false},
		{"I feel very sad and alone", false},
	}
	for _, tc := range cases {
		if got := v.IsCrisis(tc.message); got != tc.want {
			t.Fatalf("IsCrisis(%q) = %v, want %v", tc.message, got, tc.want)
		}
	}
}

func TestCrisisDisabled(t *testing.T) {
	v := NewValidator(false)
	if v.IsCrisis("I want to die") {
		t.Fatal("IsCrisis = true with detection disabled")
	}
}

func TestSoften(t *testing.T) {
	v := NewValidator(true)
	in := "You must meditate daily. This is guaranteed to work and will definitely fix everything."
	out := v.Soften(in)
	for _, banned := range []string{"must", "guaranteed", "will definitely"} {
		if strings.Contains(strings.ToLower(out), banned) {
			t.Fatalf("Soften left %q in: %s", banned, out)
		}
	}
	if !strings.Contains(out, "you may wish to") {
		t.Fatalf("Soften did not rewrite prescriptive opener: %s", out)
	}
}

func TestSoftenLeavesCleanTextAlone(t *testing.T) {
	v := NewValidator(true)
	in := "You could consider a short breathing practice before sleep."
	if out := v.Soften(in); out != in {
		t.Fatalf("Soften changed clean text: %s", out)
	}
}

func TestRedactPII(t *testing.T) {
	in := "reach me at priya.s@example.com or +91 98765 43210 please"
	out := RedactPII(in)
	if strings.Contains(out, "example.com") || strings.Contains(out, "98765") {
		t.Fatalf("RedactPII left contact details: %s", out)
	}
	if !strings.Contains(out, "[email]") || !strings.Contains(out, "[phone]") {
		t.Fatalf("RedactPII missing placeholders: %s", out)
	}
}
