package style

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Function words carry no descriptive weight and are dropped before any
// slot is assigned.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "of": true,
	"with": true, "very": true, "some": true, "that": true, "this": true,
	"is": true, "are": true, "was": true, "were": true, "to": true,
	"its": true, "their": true, "his": true, "her": true, "while": true,
}

// A preposition hands the rest of the phrase to the setting slot.
var prepositions = map[string]bool{
	"in": true, "on": true, "at": true, "inside": true, "under": true,
	"over": true, "near": true, "beside": true, "among": true, "amid": true,
	"within": true, "along": true, "across": true, "through": true,
	"behind": true, "atop": true, "beneath": true, "by": true,
}

// Affect-bearing adjectives claimed by the mood slot.
var moodWords = map[string]bool{
	"tired": true, "happy": true, "sad": true, "angry": true, "excited": true,
	"calm": true, "joyful": true, "grumpy": true, "sleepy": true,
	"fierce": true, "playful": true, "serene": true, "mysterious": true,
	"gloomy": true, "cheerful": true, "anxious": true, "proud": true,
	"curious": true, "weary": true, "triumphant": true, "cozy": true,
	"frantic": true, "peaceful": true, "brave": true, "lonely": true,
	"mischievous": true, "wistful": true,
}

// Bare-form verbs that do not carry the -ing suffix.
var verbWords = map[string]bool{
	"runs": true, "run": true, "eats": true, "eat": true, "jumps": true,
	"jump": true, "holds": true, "hold": true, "tastes": true, "taste": true,
	"pours": true, "pour": true, "leaps": true, "leap": true, "flies": true,
	"fly": true, "rides": true, "ride": true, "stirs": true, "stir": true,
	"reads": true, "read": true, "sings": true, "sing": true, "dances": true,
	"dance": true, "climbs": true, "climb": true, "smiles": true,
	"smile": true, "devours": true, "devour": true, "chases": true,
	"chase": true,
}

// Nouns that end in -ing and must not be mistaken for verbs.
var ingNouns = map[string]bool{
	"king": true, "ring": true, "thing": true, "spring": true, "string": true,
	"wing": true, "morning": true, "evening": true, "ceiling": true,
	"lightning": true, "pudding": true, "icing": true, "frosting": true,
	"viking": true,
}

// Parse decomposes raw prompt text into a component record and a weight map.
// Parsing is total: empty or whitespace-only input yields an all-empty record
// with zero weights. Identical input always yields identical output.
func Parse(text string) (ComponentRecord, WeightMap) {
	rec := ComponentRecord{Modifiers: []string{}}
	weights := ZeroWeights()

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return rec, weights
	}

	// Single left-to-right claim pass: subject region until the first verb
	// or preposition, action region from the verb until a preposition,
	// setting region after a preposition.
	var subjectRegion, actionRegion, settingRegion []string
	settingClaimed := 0
	state := SlotSubject
	for _, tok := range tokens {
		switch {
		case state != SlotSetting && prepositions[tok]:
			state = SlotSetting
			settingClaimed++ // the preposition itself belongs to the setting phrase
		case state == SlotSubject && isVerb(tok):
			state = SlotAction
			actionRegion = append(actionRegion, tok)
		default:
			switch state {
			case SlotSubject:
				subjectRegion = append(subjectRegion, tok)
			case SlotAction:
				actionRegion = append(actionRegion, tok)
			case SlotSetting:
				settingRegion = append(settingRegion, tok)
				settingClaimed++
			}
		}
	}

	// The principal noun is the last token of the subject region; affect
	// adjectives go to mood, everything else in between to modifiers.
	subjectClaimed := 0
	moodClaimed := 0
	if n := len(subjectRegion); n > 0 {
		rec.Subject = subjectRegion[n-1]
		subjectClaimed = 1
		for _, tok := range subjectRegion[:n-1] {
			if rec.Mood == "" && moodWords[tok] {
				rec.Mood = tok
				moodClaimed++
				continue
			}
			rec.Modifiers = append(rec.Modifiers, tok)
		}
	}

	rec.Action = strings.Join(actionRegion, " ")
	rec.Setting = strings.Join(settingRegion, " ")

	total := float64(len(tokens))
	weights[SlotSubject] = float64(subjectClaimed) / total
	weights[SlotAction] = float64(len(actionRegion)) / total
	weights[SlotSetting] = float64(settingClaimed) / total
	weights[SlotModifiers] = float64(len(rec.Modifiers)) / total
	weights[SlotMood] = float64(moodClaimed) / total

	return rec, weights
}

// tokenize normalizes to NFC, lowercases, strips punctuation and drops
// stopwords, preserving source order.
func tokenize(text string) []string {
	lower := cases.Lower(language.Und)
	normalized := lower.String(norm.NFC.String(text))

	var tokens []string
	for _, field := range strings.Fields(normalized) {
		tok := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
				return r
			}
			return -1
		}, field)
		if tok == "" || stopwords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isVerb(tok string) bool {
	if verbWords[tok] {
		return true
	}
	return len(tok) > 4 && strings.HasSuffix(tok, "ing") && !ingNouns[tok]
}
