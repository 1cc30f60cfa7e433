package style

import "strings"

// StyleParams are optional adjustments to a transformation. All fields are
// deterministic dials; zero values leave the category defaults untouched.
type StyleParams struct {
	// EnergyLevel in [0,1]; above 0.8 adds an intensity marker, below 0.4
	// a restraint marker. Zero means unset.
	EnergyLevel float64 `json:"energy_level,omitempty"`
	// ColorSaturation: pastel, bright, neon, muted or bold.
	ColorSaturation string `json:"color_saturation,omitempty"`
	// Era biases the palette for nostalgia_revival, e.g. "1970s".
	Era string `json:"era,omitempty"`
	// MetallicAccent swaps the gold accent for premium_disruptor.
	MetallicAccent string `json:"metallic_accent,omitempty"`
	// OutlineWeight adjusts the line treatment for mascot_theater.
	OutlineWeight string `json:"outline_weight,omitempty"`
}

// Apply rewrites each slot of rec according to the category's rule clauses.
// Clauses run in fixed clause-name order; an empty slot stays empty and is
// never invented. The slot set of the result always equals the input's.
func Apply(rec ComponentRecord, category Category) (TransformedComponentRecord, error) {
	return ApplyWithParams(rec, category, StyleParams{})
}

// ApplyWithParams is Apply with explicit style dials.
func ApplyWithParams(rec ComponentRecord, category Category, params StyleParams) (TransformedComponentRecord, error) {
	set, ok := ruleTable[category]
	if !ok {
		return TransformedComponentRecord{}, ErrUnknownCategory
	}

	out := TransformedComponentRecord{
		Category:  category,
		Subject:   transformSlot(rec.Subject, SlotSubject, set, params),
		Action:    transformSlot(rec.Action, SlotAction, set, params),
		Setting:   transformSlot(rec.Setting, SlotSetting, set, params),
		Mood:      transformSlot(rec.Mood, SlotMood, set, params),
		Modifiers: transformModifiers(rec.Modifiers, set, params),
	}
	return out, nil
}

// transformSlot applies every clause targeting the slot whose triggers match
// the original content. Rewrites run first, then prefix and fragment
// decoration.
func transformSlot(text string, slot SlotName, set *RuleClauseSet, params StyleParams) string {
	if text == "" {
		return ""
	}
	cur := text
	for _, cn := range clauseOrder {
		cl := set.Clauses[cn]
		if !cl.targets(slot) || !triggered(cl, text) {
			continue
		}
		cur = applyRewrites(cur, cl.Rewrites)
		if cl.Prefix != "" {
			cur = cl.Prefix + " " + cur
		}
		if frag := fragmentFor(cl, set.Category, params); frag != "" {
			cur = cur + ", " + frag
		}
	}
	return cur
}

// transformModifiers rewrites each modifier in place and then appends the
// fragments of matching clauses as style markers. An empty modifier list
// stays empty.
func transformModifiers(mods []string, set *RuleClauseSet, params StyleParams) []string {
	out := []string{}
	if len(mods) == 0 {
		return out
	}
	for _, mod := range mods {
		cur := mod
		for _, cn := range clauseOrder {
			cl := set.Clauses[cn]
			if cl.targets(SlotModifiers) && triggered(cl, mod) {
				cur = applyRewrites(cur, cl.Rewrites)
			}
		}
		out = append(out, cur)
	}
	joined := strings.Join(mods, " ")
	for _, cn := range clauseOrder {
		cl := set.Clauses[cn]
		if !cl.targets(SlotModifiers) || !triggered(cl, joined) {
			continue
		}
		if frag := fragmentFor(cl, set.Category, params); frag != "" {
			out = append(out, frag)
		}
	}
	out = append(out, energyMarkers(params)...)
	return out
}

func triggered(cl Clause, original string) bool {
	if len(cl.Triggers) == 0 {
		return true
	}
	for _, trig := range cl.Triggers {
		if strings.Contains(original, trig) {
			return true
		}
	}
	return false
}

// applyRewrites substitutes whole words only, preserving token order.
func applyRewrites(text string, rewrites map[string]string) string {
	if len(rewrites) == 0 {
		return text
	}
	words := strings.Fields(text)
	for i, w := range words {
		if repl, ok := rewrites[w]; ok {
			words[i] = repl
		}
	}
	return strings.Join(words, " ")
}

// fragmentFor resolves a clause's decoration fragment under the given style
// dials.
func fragmentFor(cl Clause, category Category, params StyleParams) string {
	frag := cl.Fragment
	if frag == "" {
		return ""
	}
	switch cl.Name {
	case ClausePalette:
		if params.ColorSaturation != "" {
			frag = params.ColorSaturation + "-shifted " + frag
		}
		if params.Era != "" && category == NostalgiaRevival {
			frag = params.Era + " " + frag
		}
		if params.MetallicAccent != "" && category == PremiumDisruptor {
			frag = strings.ReplaceAll(frag, "gold", params.MetallicAccent)
		}
	case ClauseLineTreatment:
		if params.OutlineWeight != "" && category == MascotTheater {
			frag = strings.ReplaceAll(frag, "thick", params.OutlineWeight)
		}
	}
	return frag
}

func energyMarkers(params StyleParams) []string {
	switch {
	case params.EnergyLevel > 0.8:
		return []string{"dialed to maximum energy"}
	case params.EnergyLevel > 0 && params.EnergyLevel < 0.4:
		return []string{"kept calm and restrained"}
	default:
		return nil
	}
}
