package store

import (
	"path/filepath"
	"testing"

	"github.com/vanderheijden86/edugram/pkg/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "edugram.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testProfile() model.Profile {
	return model.Profile{
		ID:        "user-1700000000",
		Name:      "Ravi Kumar",
		College:   "Andhra University",
		Branch:    "Computer Science",
		Year:      "3rd Year",
		Skills:    []string{"Go", "Python"},
		Interests: []string{"Music"},
		Bio:       "Learning in public",
		Email:     "ravi@example.com",
	}
}

func TestLoadProfile_AbsentOnFreshStore(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.LoadProfile()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Fatal("fresh store should report no profile")
	}
}

func TestSaveLoadProfile_Roundtrip(t *testing.T) {
	s := openTestStore(t)
	want := testProfile()

	if err := s.SaveProfile(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := s.LoadProfile()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatal("profile should be present after save")
	}
	if got.ID != want.ID || got.Name != want.Name || got.College != want.College ||
		got.Branch != want.Branch || got.Year != want.Year || got.Bio != want.Bio ||
		got.Email != want.Email {
		t.Fatalf("roundtrip mismatch: got %+v", got)
	}
	if len(got.Skills) != 2 || got.Skills[0] != "Go" {
		t.Fatalf("skills did not roundtrip: %v", got.Skills)
	}
	if len(got.Interests) != 1 || got.Interests[0] != "Music" {
		t.Fatalf("interests did not roundtrip: %v", got.Interests)
	}
}

func TestSaveProfile_Overwrites(t *testing.T) {
	s := openTestStore(t)

	first := testProfile()
	if err := s.SaveProfile(first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := first
	second.Name = "Ravi K"
	second.Skills = []string{"Rust"}
	if err := s.SaveProfile(second); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := s.LoadProfile()
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.Name != "Ravi K" || len(got.Skills) != 1 || got.Skills[0] != "Rust" {
		t.Fatalf("overwrite did not stick: %+v", got)
	}
}

func TestLoadProfile_CorruptRecordReadsAsAbsent(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put(ProfileKey, []byte("{not json")); err != nil {
		t.Fatalf("put: %v", err)
	}

	_, ok, err := s.LoadProfile()
	if err != nil {
		t.Fatalf("corrupt record must not surface an error, got %v", err)
	}
	if ok {
		t.Fatal("corrupt record should read as absent")
	}
}

func TestLoadProfile_RecordMissingIdentityReadsAsAbsent(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put(ProfileKey, []byte(`{"college":"AU"}`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	_, ok, err := s.LoadProfile()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Fatal("a record without id or name should read as absent")
	}
}

func TestClearProfile(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveProfile(testProfile()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.ClearProfile(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := s.LoadProfile(); ok {
		t.Fatal("profile should be gone after clear")
	}

	// Clearing again is a no-op.
	if err := s.ClearProfile(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestGetPutDelete_RawValues(t *testing.T) {
	s := openTestStore(t)

	if _, found, err := s.Get("missing"); err != nil || found {
		t.Fatalf("get missing: found=%v err=%v", found, err)
	}

	if err := s.Put("k", []byte(`"v"`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	v, found, err := s.Get("k")
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if string(v) != `"v"` {
		t.Fatalf("value = %s", v)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := s.Get("k"); found {
		t.Fatal("value should be gone after delete")
	}
}

func TestOpen_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dirs", "edugram.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open with missing parents: %v", err)
	}
	defer s.Close()
	if s.Path() != path {
		t.Fatalf("path = %s, want %s", s.Path(), path)
	}
}
