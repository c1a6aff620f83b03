package calendar

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"
)

func TestClassify_Table(t *testing.T) {
	cases := []struct {
		file string
		want Source
	}{
		{"Nimipäivät.ics", SourceNameday},
		{"NIMIPÄIVÄT.ics", SourceNameday},
		{"Nimipäivät.ics", SourceNameday},
		{"Juhlapyhät.ics", SourceHoliday},
		{"JUHLAPYHÄT 2025.ics", SourceHoliday},
		{"Vapaapäivät.ics", SourceHoliday},
		{"pyhät ja nimipäivät.ics", SourceHoliday},
		{"/data/Kalenteritiedot/Nimipäivät.ics", SourceNameday},
		{"Random.ics", SourceIgnored},
		{"", SourceIgnored},
	}
	for _, c := range cases {
		if got := Classify(c.file); got != c.want {
			t.Fatalf("Classify(%q) = %v, want %v", c.file, got, c.want)
		}
	}
}

func TestSource_String(t *testing.T) {
	if SourceHoliday.String() != "holiday" || SourceNameday.String() != "nameday" || SourceIgnored.String() != "ignored" {
		t.Fatalf("unexpected source names")
	}
}

func TestSplitNames(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Valentina, Ystävä", []string{"Valentina", "Ystävä"}},
		{"Aino/Ainikki,  Aino ", []string{"Aino", "Ainikki", "Aino"}},
		{" , / ", []string{}},
		{"", []string{}},
		{"Uuvo", []string{"Uuvo"}},
	}
	for _, c := range cases {
		got := SplitNames(c.in)
		if !slices.Equal(got, c.want) {
			t.Fatalf("SplitNames(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestProject_YearPrefix(t *testing.T) {
	st := StaticTable{"01-01": {"Uuvo", "Uusi"}}
	p, rejected := st.Project(2025)
	if len(rejected) != 0 {
		t.Fatalf("unexpected rejected: %v", rejected)
	}
	if got := p["2025-01-01"]; !slices.Equal(got, []string{"Uuvo", "Uusi"}) {
		t.Fatalf("projection = %#v", got)
	}
}

func TestProject_MultiYearAndLeapDay(t *testing.T) {
	st := StaticTable{"12-31": {"Sylvester"}, "02-29": {"Karkaus"}, "13-01": {"Nope"}}
	p, rejected := st.Project(2027, 2028)
	if _, ok := p["2027-12-31"]; !ok {
		t.Fatalf("missing 2027-12-31")
	}
	if _, ok := p["2028-12-31"]; !ok {
		t.Fatalf("missing 2028-12-31")
	}
	if _, ok := p["2027-02-29"]; ok {
		t.Fatalf("02-29 projected onto non-leap year")
	}
	if got := p["2028-02-29"]; !slices.Equal(got, []string{"Karkaus"}) {
		t.Fatalf("leap day = %#v", got)
	}
	slices.Sort(rejected)
	want := []string{"2027/02-29", "2027/13-01", "2028/13-01"}
	if !slices.Equal(rejected, want) {
		t.Fatalf("rejected = %v, want %v", rejected, want)
	}
}

func TestProject_CopiesLists(t *testing.T) {
	st := StaticTable{"03-01": {"Alpo"}}
	p, _ := st.Project(2025)
	p["2025-03-01"][0] = "changed"
	if st["03-01"][0] != "Alpo" {
		t.Fatalf("projection aliases the static table")
	}
}

func TestMerge_StaticAndEventNoDuplicate(t *testing.T) {
	m := NewMerger()
	p, _ := StaticTable{"02-14": {"Valentina"}}.Project(2025)
	m.SeedNamedays(p)
	m.Add(Event{Date: "2025-02-14", RawLabel: "Valentina, Ystävä", SourceFile: "Nimipäivät.ics"})

	s := m.Snapshot()
	if got := s.Namedays("2025-02-14"); !slices.Equal(got, []string{"Valentina", "Ystävä"}) {
		t.Fatalf("namedays = %#v", got)
	}
}

func TestMerge_HolidayDedupAcrossFiles(t *testing.T) {
	m := NewMerger()
	n := m.AddAll([]Event{
		{Date: "2025-12-25", RawLabel: "Joulupäivä", SourceFile: "Juhlapyhät.ics"},
		{Date: "2025-12-25", RawLabel: "Joulupäivä", SourceFile: "Vapaapäivät.ics"},
		{Date: "2025-12-25", RawLabel: "Ignored", SourceFile: "Random.ics"},
	})
	if n != 2 {
		t.Fatalf("routed = %d, want 2", n)
	}
	s := m.Snapshot()
	if got := s.Holidays("2025-12-25"); !slices.Equal(got, []string{"Joulupäivä"}) {
		t.Fatalf("holidays = %#v", got)
	}
	if len(s.Namedays("2025-12-25")) != 0 {
		t.Fatalf("ignored file leaked into namedays")
	}
}

func TestMerge_HolidayFirstSeenWins(t *testing.T) {
	m := NewMerger()
	m.AddHoliday("2025-04-18", "Pitkäperjantai")
	m.AddHoliday("2025-04-18", "Good Friday")
	m.AddHoliday("2025-04-18", " Pitkäperjantai ")
	m.AddHoliday("2025-04-18", "")
	got := m.Snapshot().Holidays("2025-04-18")
	if !slices.Equal(got, []string{"Pitkäperjantai", "Good Friday"}) {
		t.Fatalf("holidays = %#v", got)
	}
}

func TestMerge_FinalPassSplitsStaticCompounds(t *testing.T) {
	m := NewMerger()
	m.SeedNamedays(Projection{"2025-05-05": {"Aino/Ainikki", "Aino"}})
	m.AddNameday("2025-05-05", "Ainikki")
	got := m.Snapshot().Namedays("2025-05-05")
	if !slices.Equal(got, []string{"Aino", "Ainikki"}) {
		t.Fatalf("namedays = %#v", got)
	}
}

func TestMerge_EmptyLabelsDropped(t *testing.T) {
	m := NewMerger()
	m.AddNameday("2025-06-01", " , ")
	m.AddHoliday("2025-06-01", "   ")
	s := m.Snapshot()
	if !s.Empty() {
		t.Fatalf("expected empty snapshot, dates=%v", s.Dates())
	}
}

func TestSnapshot_Invariants(t *testing.T) {
	m := NewMerger()
	m.SeedNamedays(Projection{
		"2025-01-02": {"Aapeli, Aappo", "Aabel/Aapo", "Aapeli"},
		"2025-01-03": {"  Elmo ", "Elmeri/Elmo"},
	})
	m.AddNameday("2025-01-02", "Aapo, Aappo,,")
	m.AddNameday("2025-01-03", "Elmeri")
	s := m.Snapshot()

	for date, names := range s.NamedayMap() {
		seen := map[string]bool{}
		for _, n := range names {
			if strings.ContainsAny(n, ",/") {
				t.Fatalf("%s: compound entry %q", date, n)
			}
			if strings.TrimSpace(n) != n || n == "" {
				t.Fatalf("%s: untrimmed or empty entry %q", date, n)
			}
			if seen[n] {
				t.Fatalf("%s: duplicate %q", date, n)
			}
			seen[n] = true
		}
	}

	if again := s.Normalize(); !again.Equal(s) {
		t.Fatalf("normalize is not idempotent")
	}
}

func TestSnapshot_AccessorsReturnCopies(t *testing.T) {
	s := NewSnapshot(map[string][]string{"2025-12-06": {"Itsenäisyyspäivä"}}, nil)
	h := s.Holidays("2025-12-06")
	h[0] = "changed"
	if s.Holidays("2025-12-06")[0] != "Itsenäisyyspäivä" {
		t.Fatalf("snapshot mutated through accessor")
	}
	hm := s.HolidayMap()
	delete(hm, "2025-12-06")
	if len(s.Holidays("2025-12-06")) != 1 {
		t.Fatalf("snapshot mutated through map copy")
	}
}

func TestSnapshot_DatesAndDay(t *testing.T) {
	s := NewSnapshot(
		map[string][]string{"2025-12-25": {"Joulupäivä"}},
		map[string][]string{"2025-12-24": {"Aatami", "Eeva"}, "2025-12-25": {}},
	)
	if got := s.Dates(); !slices.Equal(got, []string{"2025-12-24", "2025-12-25"}) {
		t.Fatalf("dates = %v", got)
	}
	d := s.Day("2025-12-25")
	if !d.Holiday || len(d.Namedays) != 0 || d.Namedays == nil {
		t.Fatalf("day = %+v", d)
	}
	if d := s.Day("2030-01-01"); d.Holiday || d.Holidays == nil {
		t.Fatalf("empty day = %+v", d)
	}
}

func TestSnapshot_JSONShape(t *testing.T) {
	var empty Snapshot
	b, err := json.Marshal(empty)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"holidays":{},"namedays":{}}` {
		t.Fatalf("empty json = %s", b)
	}

	s := NewSnapshot(
		map[string][]string{"2025-12-25": {"Joulupäivä"}},
		map[string][]string{"2025-02-14": {"Valentina", "Ystävä"}},
	)
	doc, err := json.Marshal(Document{CalendarData: s})
	if err != nil {
		t.Fatalf("marshal doc: %v", err)
	}
	var back Document
	if err := json.Unmarshal(doc, &back); err != nil {
		t.Fatalf("unmarshal doc: %v", err)
	}
	if !back.CalendarData.Equal(s) {
		t.Fatalf("document did not survive encoding: %s", doc)
	}
	if !strings.Contains(string(doc), `"calendarData":{"holidays":{"2025-12-25":["Joulupäivä"]}`) {
		t.Fatalf("unexpected document: %s", doc)
	}
}
