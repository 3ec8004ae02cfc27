package tagging

// Synonym maps variant spellings to a canonical tag
type Synonym struct {
	Canonical string   `yaml:"canonical" json:"canonical"`
	Variants  []string `yaml:"variants" json:"variants"`
}

// DefaultSynonyms returns built-in synonym groups
func DefaultSynonyms() []Synonym {
	return []Synonym{
		{Canonical: "智能手机", Variants: []string{"智能机", "智慧手机"}},
		{Canonical: "笔记本电脑", Variants: []string{"笔电", "手提电脑"}},
	}
}

// Normalizer folds synonym variants into canonical tags
type Normalizer struct {
	canonical map[string]string
}

// NewNormalizer makes a normalizer. A variant listed in several groups maps to the first one.
func NewNormalizer(synonyms []Synonym) *Normalizer {
	n := &Normalizer{canonical: map[string]string{}}
	for _, s := range synonyms {
		for _, v := range s.Variants {
			if _, ok := n.canonical[v]; !ok {
				n.canonical[v] = s.Canonical
			}
		}
	}
	return n
}

// Normalize replaces variants with canonical tags and removes duplicates, keeping first-seen order
func (n *Normalizer) Normalize(tags []string) []string {
	res := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if c, ok := n.canonical[tag]; ok {
			tag = c
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		res = append(res, tag)
	}
	return res
}
