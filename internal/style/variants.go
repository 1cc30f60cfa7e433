package style

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"
)

// Variant is one bounded variation of a transformed record. Subject, action
// and category are invariant; only modifier and mood phrasing move.
type Variant struct {
	Name   string                     `json:"name"`
	Params StyleParams                `json:"style_params"`
	Record TransformedComponentRecord `json:"record"`
}

// VariantSet is an ordered sequence of variants sharing subject, action and
// category.
type VariantSet []Variant

// Named style dials cycled across variants, after the original parameter
// presets.
var variantParams = []struct {
	Name   string
	Params StyleParams
}{
	{"Subtle", StyleParams{EnergyLevel: 0.5, ColorSaturation: "pastel"}},
	{"Balanced", StyleParams{EnergyLevel: 0.75, ColorSaturation: "bright"}},
	{"Intense", StyleParams{EnergyLevel: 1.0, ColorSaturation: "neon"}},
	{"Vintage", StyleParams{EnergyLevel: 0.6, ColorSaturation: "muted", Era: "1970s"}},
	{"Dramatic", StyleParams{EnergyLevel: 0.9, ColorSaturation: "bold"}},
}

var (
	variantSaturations = []string{"sun-faded", "candy-coated", "ultraviolet", "dusty", "lacquered", "chalky"}
	variantDensities   = []string{"sparse accents", "balanced detail", "dense ornament", "maximal layering", "minimal trim"}
	variantEnergies    = []string{"low simmer", "steady pulse", "high voltage", "overdrive"}
)

// GenerateVariants produces exactly count variations of the input. The
// sequence is fully determined by the input record: the only randomness is a
// SHA-256 digest of the record itself, so repeated calls return identical
// sets. Each variant differs from the input and from every other variant in
// at least one modifier.
func GenerateVariants(transformed TransformedComponentRecord, count int) (VariantSet, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	if _, ok := ruleTable[transformed.Category]; !ok {
		return nil, ErrUnknownCategory
	}

	offset := recordSeed(transformed)
	variants := make(VariantSet, 0, count)
	for i := 0; i < count; i++ {
		preset := variantParams[i%len(variantParams)]

		rec := transformed
		rec.Modifiers = cloneModifiers(transformed.Modifiers)
		rec.Modifiers = append(rec.Modifiers, variantPhrase(offset, i))
		if rec.Mood != "" {
			rec.Mood = rec.Mood + ", " + variantEnergies[(offset+uint64(i))%uint64(len(variantEnergies))]
		}

		variants = append(variants, Variant{
			Name:   fmt.Sprintf("Variant %d (%s)", i+1, preset.Name),
			Params: preset.Params,
			Record: rec,
		})
	}
	return variants, nil
}

// recordSeed derives the deterministic rotation offset from the record
// content alone. Never the clock, never process state.
func recordSeed(rec TransformedComponentRecord) uint64 {
	h := sha256.New()
	h.Write([]byte(rec.Subject))
	h.Write([]byte{0})
	h.Write([]byte(rec.Action))
	h.Write([]byte{0})
	h.Write([]byte(rec.Setting))
	h.Write([]byte{0})
	h.Write([]byte(rec.Mood))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(rec.Modifiers, "\x00")))
	h.Write([]byte{0})
	h.Write([]byte(rec.Category))
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}

// variantPhrase enumerates distinct styling phrases. Indexes are decomposed
// mixed-radix over the three option lists, rotated by the record seed, so
// every index yields a different phrase.
func variantPhrase(offset uint64, i int) string {
	idx := i
	a := idx % len(variantSaturations)
	idx /= len(variantSaturations)
	b := idx % len(variantDensities)
	idx /= len(variantDensities)
	c := idx % len(variantEnergies)
	idx /= len(variantEnergies)

	phrase := fmt.Sprintf("%s finish with %s at %s",
		variantSaturations[(uint64(a)+offset)%uint64(len(variantSaturations))],
		variantDensities[(uint64(b)+offset)%uint64(len(variantDensities))],
		variantEnergies[(uint64(c)+offset)%uint64(len(variantEnergies))])
	if idx > 0 {
		phrase = fmt.Sprintf("%s, pass %d", phrase, idx)
	}
	return phrase
}
