package store

import (
	"strings"
	"testing"
)

const (
	wellFormedKey  = "AIzaSyA1234567890abcdefghijklmnop"
	anotherGoodKey = "AIzaSyB1234567890abcdefghijklmnop"
)

func TestValidateKeyFormat(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"well formed", wellFormedKey, false},
		{"wrong prefix", "sk-1234567890abcdefghijklmnopqrst", true},
		{"too short", "AIzaShort", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKeyFormat(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKeyFormat(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestAddFirstKeyBecomesActive(t *testing.T) {
	s := NewKeyStore(t.TempDir())

	first, err := s.Add("personal", wellFormedKey, true)
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if !first.IsActive {
		t.Error("first key not active")
	}
	if first.ID == "" {
		t.Error("no ID assigned")
	}

	second, err := s.Add("work", anotherGoodKey, false)
	if err != nil {
		t.Fatal(err)
	}
	if second.IsActive {
		t.Error("second key should not steal active status")
	}
	if second.IsWorking {
		t.Error("probe result not recorded")
	}

	active, err := s.Active()
	if err != nil {
		t.Fatal(err)
	}
	if active == nil || active.ID != first.ID {
		t.Errorf("Active() = %v, want the first key", active)
	}
}

func TestAddRejectsDuplicateKey(t *testing.T) {
	s := NewKeyStore(t.TempDir())
	if _, err := s.Add("a", wellFormedKey, true); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add("b", wellFormedKey, true); err == nil {
		t.Error("duplicate key value accepted")
	}
}

func TestSetActive(t *testing.T) {
	s := NewKeyStore(t.TempDir())
	first, _ := s.Add("a", wellFormedKey, true)
	second, _ := s.Add("b", anotherGoodKey, true)

	if err := s.SetActive(second.ID); err != nil {
		t.Fatalf("SetActive() error: %v", err)
	}

	keys, _ := s.List()
	for _, k := range keys {
		if k.ID == first.ID && k.IsActive {
			t.Error("previous key still active")
		}
		if k.ID == second.ID && !k.IsActive {
			t.Error("selected key not active")
		}
	}

	if err := s.SetActive("nope"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("SetActive(missing) error = %v", err)
	}
}

func TestRecordProbe(t *testing.T) {
	s := NewKeyStore(t.TempDir())
	rec, _ := s.Add("a", wellFormedKey, false)
	before := rec.LastTested

	if err := s.RecordProbe(rec.ID, true); err != nil {
		t.Fatalf("RecordProbe() error: %v", err)
	}

	keys, _ := s.List()
	if !keys[0].IsWorking {
		t.Error("probe success not recorded")
	}
	if keys[0].LastTested.Before(before) {
		t.Error("LastTested went backwards")
	}
}

func TestRemove(t *testing.T) {
	s := NewKeyStore(t.TempDir())
	rec, _ := s.Add("a", wellFormedKey, true)

	if err := s.Remove(rec.ID); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	active, err := s.Active()
	if err != nil {
		t.Fatal(err)
	}
	if active != nil {
		t.Error("removed key still reported active")
	}

	if err := s.Remove(rec.ID); err == nil {
		t.Error("removing a missing key did not error")
	}
}

func TestUserStore(t *testing.T) {
	s := NewUserStore(t.TempDir())

	u, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if u != nil {
		t.Fatal("Load() on empty store returned a user")
	}

	created, err := s.Create("Ada", "ada@example.com")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded == nil || loaded.ID != created.ID || loaded.Email != "ada@example.com" {
		t.Errorf("Load() = %+v, want the created user", loaded)
	}

	if _, err := s.Create("Eve", "eve@example.com"); err == nil {
		t.Error("second Create() did not error")
	}
}
