package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("LOG_FORMAT", " json ")
	log := New().Prefix("LOG_")

	if got := log.Get("FORMAT", "console"); got != "json" {
		t.Fatalf("Get(FORMAT) = %q, want json", got)
	}
	if got := log.Get("MISSING", "console"); got != "console" {
		t.Fatalf("Get(MISSING) = %q, want console", got)
	}
	if got := New().Get("LOG_FORMAT", ""); got != "json" {
		t.Fatalf("root Get = %q, want json", got)
	}
}

func TestGetBool(t *testing.T) {
	log := New().Prefix("LOG_")
	cases := []struct {
		env  string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"  true  ", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"", true, true},
		{"", false, false},
	}
	for _, c := range cases {
		t.Setenv("LOG_CALLER", c.env)
		if got := log.GetBool("CALLER", c.def); got != c.want {
			t.Fatalf("GetBool(%q, def=%v) = %v, want %v", c.env, c.def, got, c.want)
		}
	}
}

func TestGetInt(t *testing.T) {
	log := New().Prefix("LOG_")
	cases := []struct {
		env       string
		def, want int
	}{
		{"42", 0, 42},
		{"  7  ", 1, 7},
		{"12x", 9, 9},
		{"-5", 3, 3},
		{"", 11, 11},
	}
	for _, c := range cases {
		t.Setenv("LOG_SAMPLE_EVERY", c.env)
		if got := log.GetInt("SAMPLE_EVERY", c.def); got != c.want {
			t.Fatalf("GetInt(%q) = %d, want %d", c.env, got, c.want)
		}
	}
}
