package style

import "fmt"

// Category is one of the seven fixed packaging aesthetics.
type Category string

const (
	MascotTheater     Category = "mascot_theater"
	HealthHalo        Category = "health_halo"
	NostalgiaRevival  Category = "nostalgia_revival"
	PremiumDisruptor  Category = "premium_disruptor"
	KidChaos          Category = "kid_chaos"
	TransparentHonest Category = "transparent_honest"
	AdventureFantasy  Category = "adventure_fantasy"
)

// categoryOrder is the canonical priority order. Scoring ties resolve in
// this order, and DefaultCategory is its first entry.
var categoryOrder = []Category{
	MascotTheater,
	HealthHalo,
	NostalgiaRevival,
	PremiumDisruptor,
	KidChaos,
	TransparentHonest,
	AdventureFantasy,
}

// DefaultCategory is suggested when no category scores above zero.
const DefaultCategory = MascotTheater

// Categories returns the fixed seven-element category list in canonical
// priority order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory validates a category value arriving from outside the
// program, e.g. deserialized tool arguments.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	for _, known := range categoryOrder {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
