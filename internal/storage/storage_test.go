package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hakim/portwatch/internal/models"
	"github.com/hakim/portwatch/internal/portset"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "portwatch.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestProfiles_SaveGetRoundTrip(t *testing.T) {
	store := testStore(t)

	saved := portset.Profile{Name: "web", PortsExpr: "8080-8089,3000"}
	if err := store.SaveProfile(saved); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	got, err := store.GetProfile("web")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got == nil {
		t.Fatal("GetProfile returned nil for an existing profile")
	}
	if got.Name != saved.Name || got.PortsExpr != saved.PortsExpr {
		t.Fatalf("got %+v, want %+v", got, saved)
	}
}

func TestProfiles_GetAbsentReturnsNil(t *testing.T) {
	store := testStore(t)

	got, err := store.GetProfile("missing")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for an absent profile, got %+v", got)
	}
}

func TestProfiles_SaveReplacesExisting(t *testing.T) {
	store := testStore(t)

	if err := store.SaveProfile(portset.Profile{Name: "web", PortsExpr: "8080"}); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if err := store.SaveProfile(portset.Profile{Name: "web", PortsExpr: "9090"}); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	got, err := store.GetProfile("web")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.PortsExpr != "9090" {
		t.Fatalf("expression = %q, want the replacement", got.PortsExpr)
	}

	records, err := store.ListProfiles()
	if err != nil {
		t.Fatalf("ListProfiles: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestProfiles_ListSortedByName(t *testing.T) {
	store := testStore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := store.SaveProfile(portset.Profile{Name: name, PortsExpr: "3000"}); err != nil {
			t.Fatalf("SaveProfile(%s): %v", name, err)
		}
	}

	records, err := store.ListProfiles()
	if err != nil {
		t.Fatalf("ListProfiles: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i, name := range want {
		if records[i].Name != name {
			t.Fatalf("records[%d].Name = %q, want %q", i, records[i].Name, name)
		}
	}
}

func TestProfiles_DeleteAbsentFails(t *testing.T) {
	store := testStore(t)

	if err := store.DeleteProfile("missing"); err == nil {
		t.Fatal("deleting an absent profile must fail")
	}

	if err := store.SaveProfile(portset.Profile{Name: "web", PortsExpr: "3000"}); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if err := store.DeleteProfile("web"); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}
	got, err := store.GetProfile("web")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got != nil {
		t.Fatal("profile still present after delete")
	}
}

func TestKillRecords_NewestFirstWithLimit(t *testing.T) {
	store := testStore(t)

	base := time.Now().Add(-time.Minute)
	for i := 0; i < 5; i++ {
		record := models.NewKillRecord(
			models.KillRequest{PID: uint32(100 + i), ExpectedName: "node"},
			models.KillOutcome{OK: true, Code: models.CodeKilled, Message: "killed"},
		)
		record.At = base.Add(time.Duration(i) * time.Second)
		if err := store.SaveKillRecord(record); err != nil {
			t.Fatalf("SaveKillRecord: %v", err)
		}
	}

	records, err := store.ListKillRecords(3)
	if err != nil {
		t.Fatalf("ListKillRecords: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, wantPID := range []uint32{104, 103, 102} {
		if records[i].PID != wantPID {
			t.Fatalf("records[%d].PID = %d, want %d", i, records[i].PID, wantPID)
		}
	}

	all, err := store.ListKillRecords(0)
	if err != nil {
		t.Fatalf("ListKillRecords: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("got %d records with no limit, want 5", len(all))
	}
}

func TestKillRecords_BlockedAttemptsAreRecorded(t *testing.T) {
	store := testStore(t)

	record := models.NewKillRecord(
		models.KillRequest{PID: 4242, ExpectedName: "node"},
		models.KillOutcome{Code: models.CodeBlockedMismatch, Message: "process name mismatch"},
	)
	if err := store.SaveKillRecord(record); err != nil {
		t.Fatalf("SaveKillRecord: %v", err)
	}

	records, err := store.ListKillRecords(0)
	if err != nil {
		t.Fatalf("ListKillRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	got := records[0]
	if got.OK || got.Code != models.CodeBlockedMismatch || got.PID != 4242 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.ID != record.ID {
		t.Fatalf("ID = %q, want %q", got.ID, record.ID)
	}
}
