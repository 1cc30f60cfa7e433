package style

import (
	"sort"
	"strings"
)

// RankedCategory is one entry of a full suggestion ranking.
type RankedCategory struct {
	Category Category `json:"category"`
	Score    float64  `json:"score"`
}

// Suggest scores every category against the parsed components and returns
// the winner plus the full ranking. Each keyword hit in a slot contributes
// that slot's weight to the category score. Ties resolve in canonical
// priority order; an all-zero board falls back to DefaultCategory.
func Suggest(rec ComponentRecord, weights WeightMap) (Category, []RankedCategory) {
	slotTexts := map[SlotName]string{
		SlotSubject:   strings.ToLower(rec.Subject),
		SlotAction:    strings.ToLower(rec.Action),
		SlotSetting:   strings.ToLower(rec.Setting),
		SlotModifiers: strings.ToLower(strings.Join(rec.Modifiers, " ")),
		SlotMood:      strings.ToLower(rec.Mood),
	}

	ranking := make([]RankedCategory, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		set := ruleTable[cat]
		score := 0.0
		for _, cn := range clauseOrder {
			score += keywordScore(set.Clauses[cn].Keywords, slotTexts, weights)
		}
		score += keywordScore(set.ExtraKeywords, slotTexts, weights)
		ranking = append(ranking, RankedCategory{Category: cat, Score: score})
	}

	// Stable sort keeps canonical priority order among equal scores.
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})

	if ranking[0].Score == 0 {
		return DefaultCategory, ranking
	}
	return ranking[0].Category, ranking
}

func keywordScore(keywords []string, slotTexts map[SlotName]string, weights WeightMap) float64 {
	// Slots are visited in fixed order so float accumulation, and therefore
	// tie behavior, is identical across calls.
	score := 0.0
	for _, kw := range keywords {
		for _, slot := range slotOrder {
			text := slotTexts[slot]
			if text == "" {
				continue
			}
			score += float64(countWordMatches(text, kw)) * weights[slot]
		}
	}
	return score
}

// countWordMatches counts whole-word occurrences so that "fun" does not
// match "funnel". Keywords containing a space match as substrings.
func countWordMatches(text, keyword string) int {
	if strings.ContainsRune(keyword, ' ') {
		return strings.Count(text, keyword)
	}
	n := 0
	for _, word := range strings.Fields(text) {
		if strings.Trim(word, ",.") == keyword {
			n++
		}
	}
	return n
}
