package style

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func variantFixture(t *testing.T) TransformedComponentRecord {
	t.Helper()
	rec, _ := Parse("a tired chef tasting soup in a busy kitchen")
	transformed, err := Apply(rec, MascotTheater)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	return transformed
}

func TestGenerateVariantsInvalidCount(t *testing.T) {
	transformed := variantFixture(t)

	for _, count := range []int{0, -1, -100} {
		if _, err := GenerateVariants(transformed, count); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("count %d: expected ErrInvalidCount, got %v", count, err)
		}
	}
}

func TestGenerateVariantsCountAndInvariants(t *testing.T) {
	transformed := variantFixture(t)

	variants, err := GenerateVariants(transformed, 4)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(variants) != 4 {
		t.Fatalf("expected 4 variants, got %d", len(variants))
	}

	for i, v := range variants {
		if v.Record.Subject != transformed.Subject {
			t.Errorf("variant %d changed subject: %q", i, v.Record.Subject)
		}
		if v.Record.Action != transformed.Action {
			t.Errorf("variant %d changed action: %q", i, v.Record.Action)
		}
		if v.Record.Category != transformed.Category {
			t.Errorf("variant %d changed category: %s", i, v.Record.Category)
		}
		if v.Name == "" {
			t.Errorf("variant %d has no name", i)
		}
	}
}

func TestGenerateVariantsDistinct(t *testing.T) {
	transformed := variantFixture(t)

	variants, err := GenerateVariants(transformed, 5)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	fingerprint := func(rec TransformedComponentRecord) string {
		return rec.Mood + "\x00" + strings.Join(rec.Modifiers, "\x00")
	}

	seen := map[string]int{fingerprint(transformed): -1}
	for i, v := range variants {
		fp := fingerprint(v.Record)
		if prev, dup := seen[fp]; dup {
			t.Errorf("variant %d duplicates variant %d", i, prev)
		}
		seen[fp] = i
	}
}

func TestGenerateVariantsDeterminism(t *testing.T) {
	transformed := variantFixture(t)

	first, err := GenerateVariants(transformed, 3)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	second, _ := GenerateVariants(transformed, 3)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("variant sets differ between calls:\n%s", diff)
	}
}

func TestGenerateVariantsUnknownCategory(t *testing.T) {
	bad := TransformedComponentRecord{Category: Category("not_a_category")}

	if _, err := GenerateVariants(bad, 2); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestGenerateVariantsDoesNotMutateInput(t *testing.T) {
	transformed := variantFixture(t)
	before := cloneModifiers(transformed.Modifiers)

	if _, err := GenerateVariants(transformed, 3); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if diff := cmp.Diff(before, transformed.Modifiers); diff != "" {
		t.Errorf("input modifiers mutated:\n%s", diff)
	}
}
