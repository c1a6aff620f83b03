package module

import (
	"testing"

	"dashboard/internal/modkit"
	kit "dashboard/internal/platform/testkit"

	"github.com/google/uuid"
)

func TestNew_InstanceIDs(t *testing.T) {
	a := New(modkit.Deps{}).Ports().(Ports)
	b := New(modkit.Deps{}).Ports().(Ports)

	if _, err := uuid.Parse(a.InstanceID); err != nil {
		t.Fatalf("instance id %q: %v", a.InstanceID, err)
	}
	if a.InstanceID == b.InstanceID {
		t.Fatal("instance ids should differ per module")
	}
}

func TestNew_Defaults(t *testing.T) {
	m := New(modkit.Deps{})
	if m.Name() != "meta" || m.prefix != "/meta" {
		t.Fatalf("name=%q prefix=%q", m.Name(), m.prefix)
	}
	if m.deps.StartedAt.IsZero() {
		t.Fatal("started should default to now")
	}
}

func TestNew_InstanceIDSeam(t *testing.T) {
	kit.Swap(t, &newInstanceID, func() string { return "fixed-id" })
	if got := New(modkit.Deps{}).Ports().(Ports).InstanceID; got != "fixed-id" {
		t.Fatalf("instance id = %q", got)
	}
}
