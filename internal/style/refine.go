package style

import "strings"

// RefineRecord replaces exactly one slot's text on a transformed record,
// leaving every other field untouched. For the modifiers slot the new text
// is split on commas into an ordered list; empty text empties the slot.
func RefineRecord(rec TransformedComponentRecord, slot SlotName, newText string) (TransformedComponentRecord, error) {
	out := rec
	out.Modifiers = cloneModifiers(rec.Modifiers)
	switch slot {
	case SlotSubject:
		out.Subject = newText
	case SlotAction:
		out.Action = newText
	case SlotSetting:
		out.Setting = newText
	case SlotMood:
		out.Mood = newText
	case SlotModifiers:
		out.Modifiers = splitModifierText(newText)
	default:
		return TransformedComponentRecord{}, ErrUnknownSlot
	}
	return out, nil
}

// RefineSkeleton replaces one slot's text across a skeleton's sections,
// records the edit in the Modified audit list and re-estimates tokens.
// Category, weights and all other sections stay byte-identical.
func RefineSkeleton(sk PromptSkeleton, slot SlotName, newText string) (PromptSkeleton, error) {
	if !ValidSlot(slot) {
		return PromptSkeleton{}, ErrUnknownSlot
	}

	out := sk
	out.Sections = make([]SkeletonEntry, 0, len(sk.Sections))
	out.Modified = append(append([]SlotName(nil), sk.Modified...), slot)
	if sk.Emphasis != nil {
		out.Emphasis = make(map[SlotName]float64, len(sk.Emphasis))
		for k, v := range sk.Emphasis {
			out.Emphasis[k] = v
		}
	}

	if slot == SlotModifiers {
		// Replace the whole modifier block in place: the first modifier entry
		// absorbs the new list, subsequent ones are dropped.
		replaced := false
		weight := 0.0
		for _, e := range sk.Sections {
			if e.Slot != SlotModifiers {
				out.Sections = append(out.Sections, e)
				continue
			}
			weight = e.Weight
			if replaced {
				continue
			}
			replaced = true
			for _, mod := range splitModifierText(newText) {
				out.Sections = append(out.Sections, SkeletonEntry{Slot: SlotModifiers, Text: mod, Weight: e.Weight})
			}
		}
		if !replaced {
			for _, mod := range splitModifierText(newText) {
				out.Sections = append(out.Sections, SkeletonEntry{Slot: SlotModifiers, Text: mod, Weight: weight})
			}
		}
	} else {
		for _, e := range sk.Sections {
			if e.Slot == slot {
				e.Text = newText
			}
			out.Sections = append(out.Sections, e)
		}
	}

	out.EstimatedTokens = estimateTokens(out.Sections)
	return out, nil
}

func splitModifierText(text string) []string {
	out := []string{}
	for _, part := range strings.Split(text, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
