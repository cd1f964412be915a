package rulebook

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
)

// RawEffect is an effect entry as written in the catalog. Empty Title and Icon
// are filled in by BuildEffectTable.
type RawEffect struct {
	ID    enhancement.EffectID `mapstructure:"-"`
	Cost  int                  `mapstructure:"cost"`
	Title string               `mapstructure:"title"`
	Icon  string               `mapstructure:"icon"`
}

var effectIcons = map[enhancement.EffectID]string{
	enhancement.EffectPierce:          "statusEffectPierce",
	enhancement.EffectPush:            "statusEffectPush",
	enhancement.EffectPull:            "statusEffectPull",
	enhancement.EffectHP:              "generalHeal",
	enhancement.EffectRegenerate:      "statusEffectRegenerate",
	enhancement.EffectWard:            "statusEffectWard",
	enhancement.EffectStrengthen:      "statusEffectStrengthen",
	enhancement.EffectBless:           "statusEffectBless",
	enhancement.EffectWound:           "statusEffectWound",
	enhancement.EffectPoison:          "statusEffectPoison",
	enhancement.EffectImmobilize:      "statusEffectImmobilize",
	enhancement.EffectMuddle:          "statusEffectMuddle",
	enhancement.EffectCurse:           "statusEffectCurse",
	enhancement.EffectSpecificElement: "elementFire",
	enhancement.EffectWildElement:     "elementAll",
	enhancement.EffectAnyElement:      "elementAll",
	enhancement.EffectJump:            "generalJump",
}

var effectTitles = map[enhancement.EffectID]string{
	enhancement.EffectHP: "HP",
}

// BuildEffectTable turns raw catalog entries into an ordered effect table.
// Entries keep their order. An empty input gives an empty table.
func BuildEffectTable(raw []RawEffect) enhancement.EffectTable {
	ids := make([]enhancement.EffectID, 0, len(raw))
	effects := make([]enhancement.Effect, 0, len(raw))

	for _, r := range raw {
		title := r.Title
		if title == "" {
			title = DefaultTitle(r.ID)
		}
		icon := r.Icon
		if icon == "" {
			icon = DefaultIcon(r.ID)
		}

		ids = append(ids, r.ID)
		effects = append(effects, enhancement.Effect{
			Cost:  r.Cost,
			Title: title,
			Icon:  icon,
		})
	}

	return enhancement.NewEffectTable(ids, effects)
}

// DefaultTitle returns the display title of an effect, e.g. "specificElement" -> "Specific Element"
func DefaultTitle(id enhancement.EffectID) string {
	if title, ok := effectTitles[id]; ok {
		return title
	}
	return cases.Title(language.English).String(strings.Join(splitWords(string(id)), " "))
}

// DefaultIcon returns the icon ID of an effect, e.g. "jump" -> "generalJump"
func DefaultIcon(id enhancement.EffectID) string {
	if icon, ok := effectIcons[id]; ok {
		return icon
	}
	return "general" + pascalCase(string(id))
}

func pascalCase(s string) string {
	words := splitWords(s)
	caser := cases.Title(language.English)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, "")
}

// splitWords breaks camelCase, snake_case and kebab-case identifiers into lower case words
func splitWords(s string) []string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()

	return words
}
