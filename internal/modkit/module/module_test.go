package module

import (
	"strings"
	"testing"

	phttp "dashboard/internal/platform/net/http"
	kit "dashboard/internal/platform/testkit"
)

type SnapshotPort interface{ Years() []int }

type snapshotImpl struct{ years []int }

func (s snapshotImpl) Years() []int { return s.years }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string             { return m.name }
func (m fakeModule) Ports() PortSet           { return m.ports }
func (m fakeModule) MountRoutes(phttp.Router) {}

func TestPortsOf(t *testing.T) {
	type bundle struct {
		Snapshot SnapshotPort
		Other    int
		hidden   SnapshotPort
	}
	impl := snapshotImpl{years: []int{2025, 2026}}

	cases := []struct {
		name   string
		ports  any
		wantOK bool
	}{
		{"nil ports", nil, false},
		{"direct", SnapshotPort(impl), true},
		{"exported field", bundle{Snapshot: impl}, true},
		{"unexported field only", bundle{hidden: impl}, false},
		{"non struct", 42, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[SnapshotPort](fakeModule{name: "calendar", ports: tc.ports})
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && len(got.Years()) != 2 {
				t.Fatalf("unexpected port %#v", got)
			}
		})
	}
}

func TestMustPortsOf_PanicsWithModuleName(t *testing.T) {
	defer func() {
		r := recover()
		msg, _ := r.(string)
		if !strings.Contains(msg, "weather") || !strings.Contains(msg, "requested port not found") {
			t.Fatalf("unexpected panic %v", r)
		}
	}()
	MustPortsOf[SnapshotPort](fakeModule{name: "weather"})
}

func TestRegistry(t *testing.T) {
	kit.Serial(t)
	Reset()
	t.Cleanup(Reset)

	if _, ok := PortsAs[SnapshotPort]("calendar"); ok {
		t.Fatal("empty registry should miss")
	}
	Register("calendar", SnapshotPort(snapshotImpl{years: []int{2025}}))
	p, ok := PortsAs[SnapshotPort]("calendar")
	if !ok || len(p.Years()) != 1 {
		t.Fatalf("PortsAs = %#v, %v", p, ok)
	}
	if _, ok := PortsAs[string]("calendar"); ok {
		t.Fatal("wrong type should miss")
	}
	Reset()
	if _, ok := PortsAs[SnapshotPort]("calendar"); ok {
		t.Fatal("Reset should clear entries")
	}
}

func TestMustPortsAs(t *testing.T) {
	kit.Serial(t)
	Reset()
	t.Cleanup(Reset)

	kit.MustPanic(t, func() { MustPortsAs[SnapshotPort]("calendar") })
	Register("calendar", SnapshotPort(snapshotImpl{years: []int{2025, 2026}}))
	if got := MustPortsAs[SnapshotPort]("calendar").Years(); len(got) != 2 {
		t.Fatalf("years = %v", got)
	}
}
