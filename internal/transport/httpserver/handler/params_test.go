package handler

import "testing"

func TestParseDateField(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-03-05", "2024-03-05"},
		{"2024/03/05", "2024-03-05"},
		{"05/03/2024", "2024-03-05"},
		{"5 Mar 2024", "2024-03-05"},
		{"Mar 5, 2024", "2024-03-05"},
	}

	for _, tc := range cases {
		parsed, err := parseDateField(tc.in)
		if err != nil {
			t.Errorf("parseDateField(%q): %v", tc.in, err)
			continue
		}
		if got := parsed.Format(dateFormat); got != tc.want {
			t.Errorf("parseDateField(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := parseDateField("not a date"); err == nil {
		t.Error("expected error for unparseable date")
	}
	if _, err := parseDateField(""); err == nil {
		t.Error("expected error for empty date")
	}
}

func TestParseTimeField(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"08:30", "08:30:00"},
		{"09:15", "09:15:00"},
		{"08:30:15", "08:30:15"},
		{"8:30 AM", "08:30:00"},
		{"4:45PM", "16:45:00"},
	}

	for _, tc := range cases {
		got, err := parseTimeField(tc.in)
		if err != nil {
			t.Errorf("parseTimeField(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseTimeField(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := parseTimeField("noon"); err == nil {
		t.Error("expected error for unparseable time")
	}
}

func TestParseIDParam(t *testing.T) {
	if id, err := parseIDParam("17"); err != nil || id != 17 {
		t.Errorf("parseIDParam(17) = %d, %v", id, err)
	}
	for _, bad := range []string{"", "0", "-3", "abc"} {
		if _, err := parseIDParam(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
