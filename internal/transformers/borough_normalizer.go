package transformers

import "strings"

// Canonical borough labels.
const (
	BoroughBronx        = "Bronx"
	BoroughBrooklyn     = "Brooklyn"
	BoroughQueens       = "Queens"
	BoroughManhattan    = "Manhattan"
	BoroughStatenIsland = "Staten Island"
	BoroughUnknown      = "Unknown"
)

// boroughAliases binds a borough to the lowercase substrings recognized as
// belonging to it.
type boroughAliases struct {
	borough string
	aliases []string
}

// aliasTable is resolved top to bottom, first alias hit wins. The declared
// order (Bronx, Brooklyn, Queens, Manhattan, Staten Island) is part of the
// contract: a string matching aliases of two boroughs resolves to the one
// listed earlier, which is why this is a slice and not a map. Example:
// "Richmond Hill" hits Queens before the bare "richmond" of Staten Island.
var aliasTable = []boroughAliases{
	{BoroughBronx, []string{
		"bronx", "riverdale", "fordham", "kingsbridge", "mott haven",
		"morrisania", "throgs neck", "pelham bay", "hunts point", "co-op city",
	}},
	{BoroughBrooklyn, []string{
		"brooklyn", "kings county", "williamsburg", "dumbo", "park slope",
		"bushwick", "bedford-stuyvesant", "bedford stuyvesant", "bed-stuy",
		"flatbush", "east new york", "crown heights", "bay ridge",
		"sunset park", "greenpoint", "canarsie", "brownsville", "coney island",
		"sheepshead bay", "fort greene", "borough park",
	}},
	{BoroughQueens, []string{
		"queens", "flushing", "astoria", "long island city", "jamaica",
		"forest hills", "rego park", "elmhurst", "corona", "jackson heights",
		"ridgewood", "richmond hill", "bayside", "woodside", "sunnyside",
		"rockaway", "kew gardens", "ozone park", "whitestone", "fresh meadows",
	}},
	{BoroughManhattan, []string{
		"manhattan", "new york county", "harlem", "tribeca", "soho",
		"chelsea", "midtown", "upper east side", "upper west side",
		"east village", "west village", "greenwich village",
		"financial district", "washington heights", "inwood",
		"hell's kitchen", "hells kitchen", "murray hill", "gramercy",
		"battery park", "new york",
	}},
	{BoroughStatenIsland, []string{
		"staten island", "richmond county", "richmond", "st. george",
		"tottenville", "great kills", "new dorp", "todt hill", "willowbrook",
	}},
}

type boroughNormalizer struct{}

func NewBoroughNormalizer() BoroughNormalizer {
	return &boroughNormalizer{}
}

// Normalize lower-cases the input and scans the alias table in declared
// order, returning on the first alias contained in the input. Unmatched or
// empty input degrades to BoroughUnknown; it never fails.
func (n *boroughNormalizer) Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return BoroughUnknown
	}
	for _, entry := range aliasTable {
		for _, alias := range entry.aliases {
			if strings.Contains(s, alias) {
				return entry.borough
			}
		}
	}
	return BoroughUnknown
}

// Boroughs returns the five canonical labels in resolution order.
func Boroughs() []string {
	out := make([]string, 0, len(aliasTable))
	for _, entry := range aliasTable {
		out = append(out, entry.borough)
	}
	return out
}

// BoroughLabels returns every label a listing can carry, Unknown included.
func BoroughLabels() []string {
	return append(Boroughs(), BoroughUnknown)
}

// CanonicalBorough maps a user-supplied filter value onto its canonical
// label, case-insensitively. Unlike Normalize this is an exact label match:
// filters name a borough, they do not carry free text.
func CanonicalBorough(label string) (string, bool) {
	trimmed := strings.TrimSpace(label)
	for _, known := range BoroughLabels() {
		if strings.EqualFold(trimmed, known) {
			return known, true
		}
	}
	return "", false
}
