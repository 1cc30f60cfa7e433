package style

import (
	"sort"
	"strings"
)

// SkeletonEntry is one (slot, text, weight) triple of a prompt skeleton.
type SkeletonEntry struct {
	Slot   SlotName `json:"slot"`
	Text   string   `json:"text"`
	Weight float64  `json:"weight"`
}

// PromptSkeleton is the ordered, weighted hand-off artifact consumed by the
// downstream synthesis step. Sections are ordered by descending weight with
// a stable tie-break on canonical slot order; modifier entries keep their
// source order among themselves.
type PromptSkeleton struct {
	Category          Category             `json:"category"`
	Sections          []SkeletonEntry      `json:"sections"`
	Emphasis          map[SlotName]float64 `json:"emphasis"`
	NegativePrompt    string               `json:"negative_prompt"`
	EstimatedTokens   int                  `json:"estimated_tokens"`
	Modified          []SlotName           `json:"modified,omitempty"`
	ReadyForSynthesis bool                 `json:"ready_for_synthesis"`
}

// BuildSkeleton packages a transformed record and its originating weight map
// into a prompt skeleton. It is a pure re-ordering step: no text is altered.
func BuildSkeleton(transformed TransformedComponentRecord, weights WeightMap) (PromptSkeleton, error) {
	if err := validateWeights(weights); err != nil {
		return PromptSkeleton{}, err
	}
	set, ok := ruleTable[transformed.Category]
	if !ok {
		return PromptSkeleton{}, ErrUnknownCategory
	}

	entries := []SkeletonEntry{
		{Slot: SlotSubject, Text: transformed.Subject, Weight: weights[SlotSubject]},
		{Slot: SlotAction, Text: transformed.Action, Weight: weights[SlotAction]},
		{Slot: SlotSetting, Text: transformed.Setting, Weight: weights[SlotSetting]},
		{Slot: SlotMood, Text: transformed.Mood, Weight: weights[SlotMood]},
	}
	for _, mod := range transformed.Modifiers {
		entries = append(entries, SkeletonEntry{Slot: SlotModifiers, Text: mod, Weight: weights[SlotModifiers]})
	}

	// Entries start in canonical slot order, so a stable sort on weight alone
	// yields the required tie-break and keeps modifiers in source order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Weight > entries[j].Weight
	})

	sk := PromptSkeleton{
		Category:          transformed.Category,
		Sections:          entries,
		Emphasis:          emphasisFor(weights),
		NegativePrompt:    strings.Join(set.Avoid, ", "),
		ReadyForSynthesis: true,
	}
	sk.EstimatedTokens = estimateTokens(sk.Sections)
	return sk, nil
}

// emphasisFor maps salience to prompt-syntax emphasis multipliers.
func emphasisFor(weights WeightMap) map[SlotName]float64 {
	out := make(map[SlotName]float64, len(slotOrder))
	for _, slot := range slotOrder {
		w := weights[slot]
		switch {
		case w > 0.6:
			out[slot] = 1.3
		case w > 0.4:
			out[slot] = 1.15
		case w > 0.2:
			out[slot] = 1.0
		default:
			out[slot] = 0.85
		}
	}
	return out
}

// estimateTokens is the rough chars/4 heuristic.
func estimateTokens(sections []SkeletonEntry) int {
	chars := 0
	for _, e := range sections {
		chars += len(e.Text)
	}
	return chars / 4
}
