/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package hangman

import (
	"errors"
	"testing"
)

func TestRegistryJoinOrder(t *testing.T) {
	var r Registry

	if err := r.Join("c1", "Ann"); err != nil {
		t.Fatalf("Join(Ann) = %v", err)
	}
	if err := r.Join("c2", "Bob"); err != nil {
		t.Fatalf("Join(Bob) = %v", err)
	}

	if got := r.ConnIDs(); len(got) != 2 || got[0] != "c1" || got[1] != "c2" {
		t.Errorf("ConnIDs() = %v, want [c1 c2]", got)
	}

	// A full room is reported before the name is inspected.
	if err := r.Join("c3", "#bad"); !errors.Is(err, ErrRoomFull) {
		t.Errorf("Join on full room = %v, want %v", err, ErrRoomFull)
	}

	// Empty is reported before full.
	if err := r.Join("c3", ""); !errors.Is(err, ErrNameEmpty) {
		t.Errorf("Join(\"\") on full room = %v, want %v", err, ErrNameEmpty)
	}

	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestRegistryDuplicateIgnoresCase(t *testing.T) {
	var r Registry
	_ = r.Join("c1", "Ann")

	err := r.Join("c2", "aNN")

	var taken *NameTakenError
	if !errors.As(err, &taken) {
		t.Fatalf("Join(aNN) = %v, want NameTakenError", err)
	}
	if taken.Name != "Ann" {
		t.Errorf("taken.Name = %q, want Ann", taken.Name)
	}
	if err.Error() != `Username "Ann" is already in use.` {
		t.Errorf("message = %q", err.Error())
	}
}

func TestRegistryInvalidBeforeDuplicate(t *testing.T) {
	var r Registry
	_ = r.Join("c1", "Ann")

	if err := r.Join("c2", "1Ann"); !errors.Is(err, ErrNameLeadingDigit) {
		t.Errorf("Join(1Ann) = %v, want %v", err, ErrNameLeadingDigit)
	}
}

func TestRegistryLeave(t *testing.T) {
	var r Registry
	_ = r.Join("c1", "Ann")
	_ = r.Join("c2", "Bob")

	name, ok := r.Leave("c1")
	if !ok || name != "Ann" {
		t.Fatalf("Leave(c1) = %q, %t", name, ok)
	}

	if _, ok := r.Leave("c1"); ok {
		t.Error("second Leave(c1) reported a member")
	}
	if _, ok := r.Leave("nobody"); ok {
		t.Error("Leave(nobody) reported a member")
	}

	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}

	if _, ok := r.Name("c2"); !ok {
		t.Error("Bob missing after Ann left")
	}
}
