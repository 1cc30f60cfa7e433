package style

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRefineRecordIsolation(t *testing.T) {
	rec, _ := Parse("a tired chef tasting soup in a busy kitchen")
	transformed, err := Apply(rec, MascotTheater)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	refined, err := RefineRecord(transformed, SlotSetting, "a gleaming diner counter")
	if err != nil {
		t.Fatalf("refine failed: %v", err)
	}

	if refined.Setting != "a gleaming diner counter" {
		t.Errorf("setting not replaced, got %q", refined.Setting)
	}
	// everything else must be byte-identical
	refined.Setting = transformed.Setting
	if diff := cmp.Diff(transformed, refined); diff != "" {
		t.Errorf("refine touched more than one slot:\n%s", diff)
	}
}

func TestRefineRecordModifiers(t *testing.T) {
	transformed := TransformedComponentRecord{
		Subject:   "fox",
		Modifiers: []string{"old"},
		Category:  HealthHalo,
	}

	refined, err := RefineRecord(transformed, SlotModifiers, "swift, copper-furred")
	if err != nil {
		t.Fatalf("refine failed: %v", err)
	}

	want := []string{"swift", "copper-furred"}
	if diff := cmp.Diff(want, refined.Modifiers); diff != "" {
		t.Errorf("modifiers mismatch (-want +got):\n%s", diff)
	}
	if len(transformed.Modifiers) != 1 || transformed.Modifiers[0] != "old" {
		t.Errorf("input record mutated: %v", transformed.Modifiers)
	}
}

func TestRefineRecordUnknownSlot(t *testing.T) {
	transformed := TransformedComponentRecord{Category: MascotTheater, Modifiers: []string{}}

	_, err := RefineRecord(transformed, SlotName("sparkle"), "x")
	if !errors.Is(err, ErrUnknownSlot) {
		t.Errorf("expected ErrUnknownSlot, got %v", err)
	}
}

func TestRefineSkeletonIsolation(t *testing.T) {
	rec, weights := Parse("a tired chef tasting soup")
	transformed, _ := Apply(rec, MascotTheater)
	sk, err := BuildSkeleton(transformed, weights)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	refined, err := RefineSkeleton(sk, SlotSubject, "a towering cartoon walrus chef")
	if err != nil {
		t.Fatalf("refine failed: %v", err)
	}

	changed := 0
	for i, e := range refined.Sections {
		orig := sk.Sections[i]
		if e.Slot != orig.Slot || e.Weight != orig.Weight {
			t.Errorf("section %d structure changed: %+v vs %+v", i, e, orig)
		}
		if e.Text != orig.Text {
			changed++
			if e.Slot != SlotSubject {
				t.Errorf("unexpected change in slot %s", e.Slot)
			}
		}
	}
	if changed != 1 {
		t.Errorf("expected exactly one changed section, got %d", changed)
	}

	if refined.Category != sk.Category || refined.NegativePrompt != sk.NegativePrompt {
		t.Error("category and negative prompt must survive refinement")
	}
	if diff := cmp.Diff(sk.Emphasis, refined.Emphasis); diff != "" {
		t.Errorf("emphasis changed:\n%s", diff)
	}
	if diff := cmp.Diff([]SlotName{SlotSubject}, refined.Modified); diff != "" {
		t.Errorf("modification audit wrong (-want +got):\n%s", diff)
	}
	if len(sk.Modified) != 0 {
		t.Errorf("input skeleton mutated: %v", sk.Modified)
	}
}

func TestRefineSkeletonUnknownSlot(t *testing.T) {
	sk := PromptSkeleton{Category: MascotTheater}

	_, err := RefineSkeleton(sk, SlotName("glitter"), "x")
	if !errors.Is(err, ErrUnknownSlot) {
		t.Errorf("expected ErrUnknownSlot, got %v", err)
	}
}
