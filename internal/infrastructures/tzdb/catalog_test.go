package tzdb

import (
	"reflect"
	"testing"
	"time"

	"github.com/spf13/afero"
)

const root = "/usr/share/zoneinfo"

func writeZone(t *testing.T, fs afero.Fs, name string, data string) {
	t.Helper()
	if err := afero.WriteFile(fs, root+"/"+name, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func fixtureFS(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, name := range []string{
		"Europe/Madrid",
		"Europe/London",
		"America/New_York",
		"America/Argentina/Buenos_Aires",
		"Asia/Tokyo",
		"UTC",
		"posix/Europe/Madrid",
		"right/Asia/Tokyo",
		"posixrules",
		"Factory",
	} {
		writeZone(t, fs, name, "TZif2\x00\x00")
	}
	writeZone(t, fs, "zone.tab", "# tz zone descriptions\n")
	writeZone(t, fs, "leapseconds", "# leap seconds\n")
	writeZone(t, fs, "Europe/README", "not a zone")
	writeZone(t, fs, "Asia/Empty", "")
	return fs
}

func TestNew_FiltersNonZones(t *testing.T) {
	c, err := New(fixtureFS(t), root)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{
		"America/Argentina/Buenos_Aires",
		"America/New_York",
		"Asia/Tokyo",
		"Europe/London",
		"Europe/Madrid",
		"UTC",
	}
	if !reflect.DeepEqual(c.zones, want) {
		t.Fatalf("expected zones %v, got %v", want, c.zones)
	}
}

func TestListContinents_SortedUnique(t *testing.T) {
	c, err := New(fixtureFS(t), root)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"America", "Asia", "Europe", "UTC"}
	if got := c.ListContinents(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected continents %v, got %v", want, got)
	}
}

func TestListZones_PrefixMatchKeepsOrder(t *testing.T) {
	c := NewFromList([]string{"Europe/Paris", "America/Lima", "Europe/Berlin", "EuropeX/Fake", "Europe"})

	want := []string{"Europe/Paris", "Europe/Berlin"}
	if got := c.ListZones("Europe"); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected zones %v, got %v", want, got)
	}
	if got := c.ListZones("Antarctica"); len(got) != 0 {
		t.Fatalf("expected no zones, got %v", got)
	}
}

func TestNewFromList_CopiesInput(t *testing.T) {
	in := []string{"Europe/Madrid"}
	c := NewFromList(in)
	in[0] = "Asia/Tokyo"

	if got := c.ListZones("Europe"); len(got) != 1 {
		t.Fatalf("expected catalog to be unaffected by caller mutation, got %v", got)
	}
}

func TestLocation_DSTFromDatabase(t *testing.T) {
	c := NewFromList(fallbackZones)
	loc, err := c.Location("America/New_York")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// DST started on 2024-03-10 at 02:00 local time.
	before := time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC).In(loc)
	after := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC).In(loc)
	if before.Hour() != 15 {
		t.Fatalf("expected 15:00 EST, got %v", before)
	}
	if after.Hour() != 16 {
		t.Fatalf("expected 16:00 EDT, got %v", after)
	}

	if _, err := c.Location("Mars/Olympus_Mons"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

func TestFallbackZones_AllLoad(t *testing.T) {
	c := NewFromList(fallbackZones)
	for _, z := range fallbackZones {
		if _, err := c.Location(z); err != nil {
			t.Fatalf("fallback zone %s does not load: %v", z, err)
		}
	}
}
