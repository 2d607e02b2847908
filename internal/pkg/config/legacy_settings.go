package config

// DefaultBrandKeywords are the wash brands whose stations get a generic lane layout
// when nothing more specific is known.
var DefaultBrandKeywords = []string{"elephant bleu", "total wash"}

// LegacySettings configures the bundled legacy station data.
// An empty FilePath means the embedded copy is used.
type LegacySettings struct {
	FilePath      string   `yaml:"file_path" env:"LEGACY_FILE_PATH"`
	BrandKeywords []string `yaml:"brand_keywords" env:"LEGACY_BRAND_KEYWORDS"`
}

// Keywords returns the configured brand keywords or the defaults
func (s *LegacySettings) Keywords() []string {
	if len(s.BrandKeywords) == 0 {
		return DefaultBrandKeywords
	}
	return s.BrandKeywords
}
