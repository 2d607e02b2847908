package washlanes

import (
	"strings"
	"unicode"

	"github.com/splashcamper/splashcamper-api/internal/domain/stations"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Resolver applies the fallback chain for stations whose record carries no lanes
type Resolver struct {
	overrides     []Override
	brandKeywords []string
}

// NewResolver creates a Resolver. Nil overrides select DefaultOverrides.
func NewResolver(overrides []Override, brandKeywords []string) *Resolver {
	if overrides == nil {
		overrides = DefaultOverrides
	}
	keywords := make([]string, 0, len(brandKeywords))
	for _, k := range brandKeywords {
		if n := Normalize(k); n != "" {
			keywords = append(keywords, n)
		}
	}
	return &Resolver{overrides: overrides, brandKeywords: keywords}
}

// Resolve returns the lanes of a station given the lanes found on its record.
// Record lanes are returned untouched with source. Otherwise the override table,
// then brand keywords, then an empty list apply. Overrides keyed by id match either
// stationID or legacyID, so an imported station keeps the layout of its legacy record.
func (r *Resolver) Resolve(stationID, legacyID, name string, lanes []stations.WashLane, source string) *Resolution {
	res := &Resolution{StationID: stationID}

	if len(lanes) > 0 {
		res.Lanes = lanes
		res.Source = source
		return res
	}

	if o, ok := r.override(stationID, legacyID, name); ok {
		res.Lanes = append([]stations.WashLane(nil), o.Lanes...)
		res.Source = SourceOverride
		return res
	}

	normalizedName := Normalize(name)
	for _, k := range r.brandKeywords {
		if normalizedName != "" && strings.Contains(normalizedName, k) {
			res.Lanes = BrandDefault()
			res.Source = SourceBrandDefault
			return res
		}
	}

	res.Lanes = []stations.WashLane{}
	res.Source = SourceNone
	return res
}

func (r *Resolver) override(stationID, legacyID, name string) (Override, bool) {
	for _, o := range r.overrides {
		if o.ID != "" && (o.ID == stationID || o.ID == legacyID) {
			return o, true
		}
	}

	normalizedName := Normalize(name)
	if normalizedName == "" {
		return Override{}, false
	}
	for _, o := range r.overrides {
		if o.Name != "" && strings.Contains(normalizedName, Normalize(o.Name)) {
			return o, true
		}
	}
	return Override{}, false
}

// Normalize lowercases s, strips diacritics and collapses punctuation into single spaces.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	fields := strings.FieldsFunc(strings.ToLower(stripped), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, " ")
}
