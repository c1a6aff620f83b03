package namedays

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestFormatOf(t *testing.T) {
	cases := map[string]Format{
		"finnish_namedays.json": FormatJSON,
		"namedays.YAML":         FormatYAML,
		"namedays.yml":          FormatYAML,
		"namedays":              FormatJSON,
	}
	for in, want := range cases {
		if got := FormatOf(in); got != want {
			t.Fatalf("FormatOf(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDecode_JSONStringOrList(t *testing.T) {
	tab, err := Decode(strings.NewReader(`{"01-01": ["Uuvo", "Uusi"], "02-14": "Valentina", " 03-01 ": []}`), FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !slices.Equal(tab["01-01"], []string{"Uuvo", "Uusi"}) || !slices.Equal(tab["02-14"], []string{"Valentina"}) {
		t.Fatalf("table = %#v", tab)
	}
	if _, ok := tab["03-01"]; !ok {
		t.Fatalf("key not trimmed: %#v", tab)
	}
}

func TestDecode_YAML(t *testing.T) {
	src := "01-01: [Uuvo, Uusi]\n02-14: Valentina\n12-24:\n  - Aatami\n  - Eeva\n"
	tab, err := Decode(strings.NewReader(src), FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !slices.Equal(tab["12-24"], []string{"Aatami", "Eeva"}) || !slices.Equal(tab["02-14"], []string{"Valentina"}) {
		t.Fatalf("table = %#v", tab)
	}
	if _, err := Decode(strings.NewReader("01-01: {a: b}\n"), FormatYAML); err == nil {
		t.Fatalf("mapping value should be rejected")
	}
}

func TestLoad_FailSoft(t *testing.T) {
	if tab := Load(filepath.Join(t.TempDir(), "missing.json")); tab == nil || tab.Len() != 0 {
		t.Fatalf("missing file: %#v", tab)
	}
	if tab := Load(write(t, "broken.json", `{"01-01": [`)); tab == nil || tab.Len() != 0 {
		t.Fatalf("broken file: %#v", tab)
	}
	if tab := Load(write(t, "wrong.json", `{"01-01": 5}`)); tab.Len() != 0 {
		t.Fatalf("wrong shape: %#v", tab)
	}
	if tab := Load(""); tab.Len() != 0 {
		t.Fatalf("empty path: %#v", tab)
	}
}

func TestProject_FromFile(t *testing.T) {
	p := Project(write(t, "namedays.json", `{"01-01": ["Uuvo", "Uusi"], "02-29": ["Karkaus"]}`), 2025)
	if !slices.Equal(p["2025-01-01"], []string{"Uuvo", "Uusi"}) {
		t.Fatalf("projection = %#v", p)
	}
	if _, ok := p["2025-02-29"]; ok {
		t.Fatalf("02-29 projected onto 2025")
	}
}
