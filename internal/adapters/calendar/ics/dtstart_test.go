package ics

import "testing"

func TestParseStamp_Table(t *testing.T) {
	cases := []struct {
		value  string
		params map[string][]string
		date   string
		only   bool
	}{
		{"20250214", nil, "2025-02-14", true},
		{"20250214", map[string][]string{"VALUE": {"DATE"}}, "2025-02-14", true},
		{"20250214T000000", map[string][]string{"value": {"DATE"}}, "2025-02-14", true},
		{"20250214T230000Z", nil, "2025-02-14", false},
		{"20250215T003000", map[string][]string{"TZID": {"Europe/Helsinki"}}, "2025-02-14", false},
		{"20250215T003000", map[string][]string{"TZID": {`"Europe/Helsinki"`}}, "2025-02-14", false},
		{"20250215T003000", map[string][]string{"TZID": {"Mars/Olympus"}}, "2025-02-15", false},
		{"20250215T003000", nil, "2025-02-15", false},
		{"20250214", map[string][]string{"TZID": {"Pacific/Kiritimati"}}, "2025-02-14", true},
	}
	for _, c := range cases {
		st, err := parseStamp(c.value, c.params)
		if err != nil {
			t.Fatalf("parseStamp(%q): %v", c.value, err)
		}
		if st.Date() != c.date || st.dateOnly != c.only {
			t.Fatalf("parseStamp(%q, %v) = %s/%v, want %s/%v", c.value, c.params, st.Date(), st.dateOnly, c.date, c.only)
		}
	}
}

func TestParseStamp_Rejects(t *testing.T) {
	for _, v := range []string{"", "2025", "2025-02-14", "20251340", "20250214T25", "20250214T250000Z"} {
		if _, err := parseStamp(v, nil); err == nil {
			t.Fatalf("parseStamp(%q) should fail", v)
		}
	}
}

func TestUnescape(t *testing.T) {
	cases := map[string]string{
		`Valentina\, Ystävä`: "Valentina, Ystävä",
		`a\;b`:               "a;b",
		`back\\slash`:        `back\slash`,
		"  plain  ":          "plain",
		`rivi\nrivi`:         "rivi rivi",
	}
	for in, want := range cases {
		if got := unescape(in); got != want {
			t.Fatalf("unescape(%q) = %q, want %q", in, got, want)
		}
	}
}
