package style

// SlotName identifies one semantic slot of a component record.
type SlotName string

const (
	SlotSubject   SlotName = "subject"
	SlotAction    SlotName = "action"
	SlotSetting   SlotName = "setting"
	SlotModifiers SlotName = "modifiers"
	SlotMood      SlotName = "mood"
)

// slotOrder is the canonical tie-break order used when assembling skeletons:
// subject, action, setting, mood, then modifiers in source order.
var slotOrder = []SlotName{SlotSubject, SlotAction, SlotSetting, SlotMood, SlotModifiers}

// Slots returns the fixed slot set in canonical order.
func Slots() []SlotName {
	out := make([]SlotName, len(slotOrder))
	copy(out, slotOrder)
	return out
}

func slotRank(name SlotName) int {
	for i, s := range slotOrder {
		if s == name {
			return i
		}
	}
	return len(slotOrder)
}

// ValidSlot reports whether name is one of the fixed slot names. Values
// arriving from deserialized tool arguments must be checked with this before
// use; inside the package the closed constant set makes it unnecessary.
func ValidSlot(name SlotName) bool {
	return slotRank(name) < len(slotOrder)
}

// ComponentRecord holds the semantic decomposition of a raw prompt. A slot
// that was not detected carries an empty string (or empty slice), never a
// nil marker.
type ComponentRecord struct {
	Subject   string   `json:"subject"`
	Action    string   `json:"action"`
	Setting   string   `json:"setting"`
	Modifiers []string `json:"modifiers"`
	Mood      string   `json:"mood"`
}

// WeightMap maps each slot to its extraction salience in [0,1]. Weights do
// not need to sum to 1.
type WeightMap map[SlotName]float64

// ZeroWeights returns a weight map covering the full slot set with all
// weights at zero.
func ZeroWeights() WeightMap {
	w := make(WeightMap, len(slotOrder))
	for _, s := range slotOrder {
		w[s] = 0
	}
	return w
}

// validateWeights checks that w covers exactly the fixed slot set.
func validateWeights(w WeightMap) error {
	if len(w) != len(slotOrder) {
		return ErrWeightMapMismatch
	}
	for _, s := range slotOrder {
		if _, ok := w[s]; !ok {
			return ErrWeightMapMismatch
		}
	}
	return nil
}

// TransformedComponentRecord mirrors ComponentRecord after category rules
// have been applied, and remembers which category produced it.
type TransformedComponentRecord struct {
	Subject   string   `json:"subject"`
	Action    string   `json:"action"`
	Setting   string   `json:"setting"`
	Modifiers []string `json:"modifiers"`
	Mood      string   `json:"mood"`
	Category  Category `json:"category"`
}

func cloneModifiers(mods []string) []string {
	out := make([]string, len(mods))
	copy(out, mods)
	return out
}
