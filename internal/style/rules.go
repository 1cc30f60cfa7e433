package style

import "fmt"

// ClauseName identifies one rewrite rule within a category.
type ClauseName string

const (
	ClausePalette       ClauseName = "palette"
	ClauseComposition   ClauseName = "composition"
	ClauseLineTreatment ClauseName = "line_treatment"
	ClauseLighting      ClauseName = "lighting"
	ClauseLettering     ClauseName = "lettering"
	ClauseDensity       ClauseName = "density"
	ClauseTexture       ClauseName = "texture"
)

// clauseOrder fixes the application order so composition of clauses is
// deterministic regardless of input.
var clauseOrder = []ClauseName{
	ClausePalette,
	ClauseComposition,
	ClauseLineTreatment,
	ClauseLighting,
	ClauseLettering,
	ClauseDensity,
	ClauseTexture,
}

// ClauseNames returns the fixed clause name set in application order.
func ClauseNames() []ClauseName {
	out := make([]ClauseName, len(clauseOrder))
	copy(out, clauseOrder)
	return out
}

// Clause is one named rewrite rule. Rewrites are whole-word substitutions
// applied before decoration; Prefix and Fragment wrap the slot text; Triggers,
// when present, gate the clause on the original slot content. Keywords feed
// category suggestion scoring.
type Clause struct {
	Name     ClauseName        `json:"name"`
	Slots    []SlotName        `json:"slots"`
	Triggers []string          `json:"triggers,omitempty"`
	Rewrites map[string]string `json:"rewrites,omitempty"`
	Prefix   string            `json:"prefix,omitempty"`
	Fragment string            `json:"fragment"`
	Keywords []string          `json:"keywords"`
}

func (c Clause) targets(slot SlotName) bool {
	for _, s := range c.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// RuleClauseSet is the full rule definition for one category. Every category
// defines all seven clause names.
type RuleClauseSet struct {
	Category      Category              `json:"category"`
	Description   string                `json:"description"`
	VisualDNA     []string              `json:"visual_dna"`
	Clauses       map[ClauseName]Clause `json:"clauses"`
	Avoid         []string              `json:"avoid"`
	ExtraKeywords []string              `json:"extra_keywords,omitempty"`
}

// ruleTable is built once at init and treated as read-only afterwards,
// except for ExtendKeywords which must run before serving begins.
var ruleTable map[Category]*RuleClauseSet

// RulesFor returns a copy of the rule clause set for a category.
func RulesFor(category Category) (RuleClauseSet, error) {
	set, ok := ruleTable[category]
	if !ok {
		return RuleClauseSet{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	out := *set
	out.Clauses = make(map[ClauseName]Clause, len(set.Clauses))
	for name, cl := range set.Clauses {
		out.Clauses[name] = cl
	}
	out.VisualDNA = append([]string(nil), set.VisualDNA...)
	out.Avoid = append([]string(nil), set.Avoid...)
	out.ExtraKeywords = append([]string(nil), set.ExtraKeywords...)
	return out, nil
}

// ExtendKeywords appends extra scoring keywords for a category. The keyword
// mapping is configuration data; overrides are merged once during process
// startup, before any tool call is served.
func ExtendKeywords(category Category, keywords []string) error {
	set, ok := ruleTable[category]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	set.ExtraKeywords = append(set.ExtraKeywords, keywords...)
	return nil
}

func init() {
	ruleTable = make(map[Category]*RuleClauseSet, len(categoryOrder))
	for _, set := range []*RuleClauseSet{
		mascotTheaterRules(),
		healthHaloRules(),
		nostalgiaRevivalRules(),
		premiumDisruptorRules(),
		kidChaosRules(),
		transparentHonestRules(),
		adventureFantasyRules(),
	} {
		ruleTable[set.Category] = set
	}
}

func mascotTheaterRules() *RuleClauseSet {
	return &RuleClauseSet{
		Category:    MascotTheater,
		Description: "Cartoon mascot front and center, bright colors, dynamic energy",
		VisualDNA:   []string{"cartoon character", "bold outlines", "primary colors", "starbursts", "motion lines"},
		Avoid:       []string{"photorealism", "muted palette", "static pose", "drab lighting"},
		Clauses: map[ClauseName]Clause{
			ClausePalette: {
				Name:     ClausePalette,
				Slots:    []SlotName{SlotModifiers},
				Fragment: "bright primary colors at full saturation",
				Keywords: []string{"colorful", "bright", "cheerful", "red", "yellow", "blue"},
			},
			ClauseComposition: {
				Name:     ClauseComposition,
				Slots:    []SlotName{SlotAction},
				Fragment: "performed straight at the viewer with theatrical staging",
				Keywords: []string{"playful", "fun", "energetic", "bouncing", "dynamic", "mascot"},
			},
			ClauseLineTreatment: {
				Name:     ClauseLineTreatment,
				Slots:    []SlotName{SlotSubject},
				Prefix:   "cartoon",
				Fragment: "drawn with thick confident outlines",
				Keywords: []string{"cartoon", "character", "toon", "chef", "animal", "tiger"},
			},
			ClauseLighting: {
				Name:  ClauseLighting,
				Slots: []SlotName{SlotMood},
				Rewrites: map[string]string{
					"tired":   "comically exhausted",
					"sleepy":  "droopy-eyed and yawning",
					"sad":     "theatrically glum",
					"happy":   "beaming with cartoon delight",
					"angry":   "steaming mad in cartoon fashion",
					"excited": "bursting with cartoon energy",
					"calm":    "easygoing and grinning",
				},
				Fragment: "under flat even toon lighting",
				Keywords: []string{"smile", "grin", "happy", "silly"},
			},
			ClauseLettering: {
				Name:     ClauseLettering,
				Slots:    []SlotName{SlotModifiers},
				Fragment: "bubbly hand-lettered title energy",
				Keywords: []string{"bubbly", "logo", "mascot"},
			},
			ClauseDensity: {
				Name:     ClauseDensity,
				Slots:    []SlotName{SlotSetting},
				Fragment: "background simplified so the mascot pops",
				Keywords: []string{"busy", "crowd", "stage"},
			},
			ClauseTexture: {
				Name:     ClauseTexture,
				Slots:    []SlotName{SlotSubject},
				Triggers: []string{"soup", "cereal", "cake", "bread", "fruit", "candy", "milk"},
				Fragment: "with a glossy appetizing sheen",
				Keywords: []string{"glossy", "shiny", "tasty"},
			},
		},
	}
}

func healthHaloRules() *RuleClauseSet {
	return &RuleClauseSet{
		Category:    HealthHalo,
		Description: "Minimalist natural photography, muted tones, wholesome calm",
		VisualDNA:   []string{"natural light", "muted earth tones", "white space", "macro texture", "soft focus"},
		Avoid:       []string{"clutter", "neon colors", "cartoon outlines", "heavy shadows"},
		Clauses: map[ClauseName]Clause{
			ClausePalette: {
				Name:     ClausePalette,
				Slots:    []SlotName{SlotModifiers},
				Fragment: "muted earth tones and soft sage greens",
				Keywords: []string{"natural", "organic", "green", "fresh", "earthy"},
			},
			ClauseComposition: {
				Name:     ClauseComposition,
				Slots:    []SlotName{SlotAction},
				Fragment: "captured in an unhurried centered composition",
				Keywords: []string{"calm", "gentle", "slow", "quiet"},
			},
			ClauseLineTreatment: {
				Name:     ClauseLineTreatment,
				Slots:    []SlotName{SlotSubject},
				Prefix:   "naturally lit",
				Fragment: "rendered in soft-focus photography",
				Keywords: []string{"wholesome", "honest", "real", "farm"},
			},
			ClauseLighting: {
				Name:  ClauseLighting,
				Slots: []SlotName{SlotMood},
				Rewrites: map[string]string{
					"tired":   "quietly restful",
					"happy":   "softly content",
					"calm":    "meditatively calm",
					"excited": "gently uplifted",
					"sad":     "pensively mellow",
				},
				Fragment: "bathed in diffuse morning light",
				Keywords: []string{"morning", "sunlight", "soft", "serene"},
			},
			ClauseLettering: {
				Name:     ClauseLettering,
				Slots:    []SlotName{SlotModifiers},
				Fragment: "understated lowercase serif labeling",
				Keywords: []string{"simple", "clean", "label"},
			},
			ClauseDensity: {
				Name:     ClauseDensity,
				Slots:    []SlotName{SlotSetting},
				Fragment: "generous white space around every element",
				Keywords: []string{"minimal", "sparse", "airy", "garden"},
			},
			ClauseTexture: {
				Name:     ClauseTexture,
				Slots:    []SlotName{SlotSubject},
				Triggers: []string{"grain", "oat", "wheat", "seed", "fruit", "berry", "honey"},
				Fragment: "showing honest macro texture",
				Keywords: []string{"grain", "texture", "raw", "wholesome", "oats"},
			},
		},
	}
}

func nostalgiaRevivalRules() *RuleClauseSet {
	return &RuleClauseSet{
		Category:    NostalgiaRevival,
		Description: "Vintage screen-print aesthetic with limited palettes and worn charm",
		VisualDNA:   []string{"limited palette", "halftone dots", "screen-print edges", "faded warmth", "seventies lettering"},
		Avoid:       []string{"modern gradients", "lens flare", "digital gloss", "4k sharpness"},
		Clauses: map[ClauseName]Clause{
			ClausePalette: {
				Name:     ClausePalette,
				Slots:    []SlotName{SlotModifiers},
				Fragment: "a limited four-color screen print palette",
				Keywords: []string{"retro", "vintage", "classic", "faded", "seventies"},
			},
			ClauseComposition: {
				Name:     ClauseComposition,
				Slots:    []SlotName{SlotAction},
				Fragment: "framed like a 1970s cereal commercial still",
				Keywords: []string{"diner", "jukebox", "rollerskate", "drive-in"},
			},
			ClauseLineTreatment: {
				Name:     ClauseLineTreatment,
				Slots:    []SlotName{SlotSubject},
				Prefix:   "retro",
				Fragment: "inked with worn screen-print edges",
				Keywords: []string{"throwback", "old-school", "heritage"},
			},
			ClauseLighting: {
				Name:  ClauseLighting,
				Slots: []SlotName{SlotMood},
				Rewrites: map[string]string{
					"tired":   "wistfully weary",
					"happy":   "sunnily nostalgic",
					"sad":     "bittersweet",
					"excited": "saturday-morning giddy",
					"calm":    "lazily contented",
				},
				Fragment: "washed in warm faded tones",
				Keywords: []string{"memory", "childhood", "sunday", "nostalgic"},
			},
			ClauseLettering: {
				Name:     ClauseLettering,
				Slots:    []SlotName{SlotModifiers},
				Fragment: "chunky seventies catalog lettering",
				Keywords: []string{"groovy", "funky"},
			},
			ClauseDensity: {
				Name:     ClauseDensity,
				Slots:    []SlotName{SlotSetting},
				Fragment: "halftone dots and registration drift in the backdrop",
				Keywords: []string{"halftone", "print", "poster"},
			},
			ClauseTexture: {
				Name:     ClauseTexture,
				Slots:    []SlotName{SlotSubject},
				Fragment: "with paper-grain and misregistration charm",
				Keywords: []string{"paper", "worn", "aged"},
			},
		},
	}
}

func premiumDisruptorRules() *RuleClauseSet {
	return &RuleClauseSet{
		Category:    PremiumDisruptor,
		Description: "Black backgrounds, metallic accents, luxury minimalism",
		VisualDNA:   []string{"void-black backdrop", "metallic accent", "negative space", "single key light", "matte finish"},
		Avoid:       []string{"bright primaries", "busy background", "cartoon style", "cheap gloss"},
		Clauses: map[ClauseName]Clause{
			ClausePalette: {
				Name:     ClausePalette,
				Slots:    []SlotName{SlotModifiers},
				Fragment: "deep matte black offset by a single gold accent",
				Keywords: []string{"luxury", "premium", "gold", "black", "elegant"},
			},
			ClauseComposition: {
				Name:     ClauseComposition,
				Slots:    []SlotName{SlotAction},
				Fragment: "staged with gallery-like negative space",
				Keywords: []string{"minimal", "exclusive", "refined", "understated"},
			},
			ClauseLineTreatment: {
				Name:     ClauseLineTreatment,
				Slots:    []SlotName{SlotSubject},
				Prefix:   "sculptural",
				Fragment: "rendered with crisp product-shot precision",
				Keywords: []string{"sleek", "polished", "pristine"},
			},
			ClauseLighting: {
				Name:  ClauseLighting,
				Slots: []SlotName{SlotMood},
				Rewrites: map[string]string{
					"tired":   "composed and unhurried",
					"happy":   "quietly assured",
					"excited": "restrained anticipation",
					"calm":    "cool and deliberate",
					"sad":     "somberly poised",
				},
				Fragment: "lit by a single dramatic key light",
				Keywords: []string{"dramatic", "moody", "noir"},
			},
			ClauseLettering: {
				Name:     ClauseLettering,
				Slots:    []SlotName{SlotModifiers},
				Fragment: "thin uppercase sans-serif letterspacing",
				Keywords: []string{"modern", "typographic"},
			},
			ClauseDensity: {
				Name:     ClauseDensity,
				Slots:    []SlotName{SlotSetting},
				Fragment: "stripped to a void-black backdrop",
				Keywords: []string{"dark", "night", "void"},
			},
			ClauseTexture: {
				Name:     ClauseTexture,
				Slots:    []SlotName{SlotSubject},
				Fragment: "with a soft-touch matte finish",
				Keywords: []string{"matte", "velvet", "satin"},
			},
		},
	}
}

func kidChaosRules() *RuleClauseSet {
	return &RuleClauseSet{
		Category:    KidChaos,
		Description: "Neon explosion, maximum density, extreme angles",
		VisualDNA:   []string{"clashing neon", "dutch angles", "sticker outlines", "chrome lettering", "packed frame"},
		Avoid:       []string{"negative space", "muted tones", "symmetry", "restraint"},
		Clauses: map[ClauseName]Clause{
			ClausePalette: {
				Name:     ClausePalette,
				Slots:    []SlotName{SlotModifiers},
				Fragment: "clashing neon colors cranked past maximum",
				Keywords: []string{"neon", "rainbow", "crazy", "wild", "loud"},
			},
			ClauseComposition: {
				Name:     ClauseComposition,
				Slots:    []SlotName{SlotAction},
				Fragment: "shot at an extreme dutch angle mid-explosion",
				Keywords: []string{"explosion", "extreme", "fast", "turbo", "blast"},
			},
			ClauseLineTreatment: {
				Name:     ClauseLineTreatment,
				Slots:    []SlotName{SlotSubject},
				Prefix:   "turbocharged",
				Fragment: "outlined in electric sticker style",
				Keywords: []string{"sticker", "slime", "radical"},
			},
			ClauseLighting: {
				Name:  ClauseLighting,
				Slots: []SlotName{SlotMood},
				Rewrites: map[string]string{
					"tired":   "wired and overclocked",
					"happy":   "hyper-stoked",
					"angry":   "rage-mode furious",
					"excited": "off-the-charts amped",
					"calm":    "suspiciously chill",
				},
				Fragment: "strobed with arcade glow",
				Keywords: []string{"party", "arcade", "game", "kids"},
			},
			ClauseLettering: {
				Name:     ClauseLettering,
				Slots:    []SlotName{SlotModifiers},
				Fragment: "exploding 3d chrome lettering",
				Keywords: []string{"chrome", "graffiti"},
			},
			ClauseDensity: {
				Name:     ClauseDensity,
				Slots:    []SlotName{SlotSetting},
				Fragment: "every inch crammed with splats and bursts",
				Keywords: []string{"packed", "chaos", "messy"},
			},
			ClauseTexture: {
				Name:     ClauseTexture,
				Slots:    []SlotName{SlotSubject},
				Fragment: "dripping with goo and sparks",
				Keywords: []string{"goo", "sparks", "gooey"},
			},
		},
	}
}

func transparentHonestRules() *RuleClauseSet {
	return &RuleClauseSet{
		Category:    TransparentHonest,
		Description: "Clinical infographic clarity, labeled components, zero decoration",
		VisualDNA:   []string{"clinical white", "technical linework", "annotation labels", "ordered grid", "flat neutrals"},
		Avoid:       []string{"decoration", "gradients", "drama", "mascots"},
		Clauses: map[ClauseName]Clause{
			ClausePalette: {
				Name:     ClausePalette,
				Slots:    []SlotName{SlotModifiers},
				Fragment: "flat neutral tones on clinical white",
				Keywords: []string{"clean", "clear", "simple", "white", "plain"},
			},
			ClauseComposition: {
				Name:     ClauseComposition,
				Slots:    []SlotName{SlotAction},
				Fragment: "laid out as a labeled diagram",
				Keywords: []string{"diagram", "chart", "infographic"},
			},
			ClauseLineTreatment: {
				Name:     ClauseLineTreatment,
				Slots:    []SlotName{SlotSubject},
				Prefix:   "precisely drawn",
				Fragment: "in thin technical linework",
				Keywords: []string{"technical", "precise", "exact"},
			},
			ClauseLighting: {
				Name:  ClauseLighting,
				Slots: []SlotName{SlotMood},
				Rewrites: map[string]string{
					"tired":   "matter-of-factly fatigued",
					"happy":   "plainly pleased",
					"calm":    "evenly neutral",
					"excited": "measurably enthusiastic",
					"sad":     "documented as downcast",
				},
				Fragment: "under shadowless studio light",
				Keywords: []string{"studio", "neutral", "flat"},
			},
			ClauseLettering: {
				Name:     ClauseLettering,
				Slots:    []SlotName{SlotModifiers},
				Fragment: "utilitarian annotation labels with callout lines",
				Keywords: []string{"label", "ingredients", "annotated", "transparent"},
			},
			ClauseDensity: {
				Name:     ClauseDensity,
				Slots:    []SlotName{SlotSetting},
				Fragment: "an ordered grid with measured spacing",
				Keywords: []string{"grid", "ordered", "tidy"},
			},
			ClauseTexture: {
				Name:     ClauseTexture,
				Slots:    []SlotName{SlotSubject},
				Fragment: "matte and unretouched",
				Keywords: []string{"honest", "unfiltered", "plainspoken"},
			},
		},
	}
}

func adventureFantasyRules() *RuleClauseSet {
	return &RuleClauseSet{
		Category:    AdventureFantasy,
		Description: "Cinematic epic scale, magical effects, heroic framing",
		VisualDNA:   []string{"jewel tones", "heroic low angle", "storm backlight", "rune lettering", "layered vistas"},
		Avoid:       []string{"flat lighting", "plain background", "smallness", "clip art"},
		Clauses: map[ClauseName]Clause{
			ClausePalette: {
				Name:     ClausePalette,
				Slots:    []SlotName{SlotModifiers},
				Fragment: "storm-lit jewel tones with ember highlights",
				Keywords: []string{"epic", "magic", "magical", "dragon", "quest", "legendary"},
			},
			ClauseComposition: {
				Name:     ClauseComposition,
				Slots:    []SlotName{SlotAction},
				Fragment: "framed at a heroic low angle against a vast horizon",
				Keywords: []string{"journey", "mountain", "horizon", "vast", "soaring"},
			},
			ClauseLineTreatment: {
				Name:     ClauseLineTreatment,
				Slots:    []SlotName{SlotSubject},
				Prefix:   "legendary",
				Fragment: "painted with cinematic concept-art detail",
				Keywords: []string{"hero", "warrior", "knight", "wizard"},
			},
			ClauseLighting: {
				Name:  ClauseLighting,
				Slots: []SlotName{SlotMood},
				Rewrites: map[string]string{
					"tired":   "battle-worn",
					"happy":   "victorious",
					"sad":     "sorrow-laden",
					"brave":   "valiant",
					"excited": "blazing with resolve",
					"calm":    "steeled and serene",
				},
				Fragment: "backlit by a breaking storm",
				Keywords: []string{"storm", "fire", "glow", "lightning"},
			},
			ClauseLettering: {
				Name:     ClauseLettering,
				Slots:    []SlotName{SlotModifiers},
				Fragment: "engraved rune-edged title treatment",
				Keywords: []string{"rune", "ancient", "engraved"},
			},
			ClauseDensity: {
				Name:     ClauseDensity,
				Slots:    []SlotName{SlotSetting},
				Fragment: "layered with mist, ruins and distant peaks",
				Keywords: []string{"ruins", "forest", "castle", "peaks", "cavern"},
			},
			ClauseTexture: {
				Name:     ClauseTexture,
				Slots:    []SlotName{SlotSubject},
				Fragment: "weathered with an epic battle patina",
				Keywords: []string{"weathered", "carved", "mythic"},
			},
		},
	}
}
