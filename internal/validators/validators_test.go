package validators

import "testing"

func TestDomainPart(t *testing.T) {
	cases := []struct {
		email string
		want  string
	}{
		{"ana@example.com", "example.com"},
		{"with@multiple@ats.mx", "ats.mx"},
		{"no-at-sign", ""},
		{"trailing@", ""},
		{"@leading.com", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := domainPart(tc.email); got != tc.want {
			t.Errorf("domainPart(%q) = %q, want %q", tc.email, got, tc.want)
		}
	}
}

func TestIsPhoneValid(t *testing.T) {
	valid := []string{"+52 55 1234 5678", "5512345678", "55 1234-5678"}
	for _, p := range valid {
		if !IsPhoneValid(p) {
			t.Errorf("IsPhoneValid(%q) = false, want true", p)
		}
	}

	invalid := []string{"", "abc", "+", "12345", "+52;5512345678"}
	for _, p := range invalid {
		if IsPhoneValid(p) {
			t.Errorf("IsPhoneValid(%q) = true, want false", p)
		}
	}
}
