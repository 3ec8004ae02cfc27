package tagging

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Config holds generator configuration, zero values are replaced by defaults
type Config struct {
	Dictionary     *Dictionary // defaults to DefaultDictionary
	Normalizer     *Normalizer // defaults to DefaultSynonyms
	Tokenizer      Tokenizer   // defaults to NGramTokenizer{2, 3}
	MaxTags        int         // tags per product, 5
	ScoreThreshold float64     // minimal tf-idf score of a statistical tag, 0.2
	MinTermLength  int         // minimal statistical tag length in runes, 2
	MaxFeatures    int         // vocabulary size, 500
	MaxCorpus      int         // documents used to fit the model, 1000
}

// Generator produces product tags from a description. It's safe for concurrent use.
type Generator struct {
	dict       *Dictionary
	normalizer *Normalizer
	extractor  *Extractor
	sanitizer  *bluemonday.Policy

	maxTags   int
	threshold float64
	minLen    int
}

// NewGenerator makes a tag generator. The statistical model is not fitted, call InitModel for it.
func NewGenerator(cfg Config) *Generator {
	if cfg.Dictionary == nil {
		cfg.Dictionary = DefaultDictionary()
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = NewNormalizer(DefaultSynonyms())
	}
	if cfg.Tokenizer == nil {
		cfg.Tokenizer = NGramTokenizer{MinN: 2, MaxN: 3}
	}
	if cfg.MaxTags <= 0 {
		cfg.MaxTags = 5
	}
	if cfg.ScoreThreshold == 0 {
		cfg.ScoreThreshold = 0.2
	}
	if cfg.MinTermLength == 0 {
		cfg.MinTermLength = 2
	}
	return &Generator{
		dict:       cfg.Dictionary,
		normalizer: cfg.Normalizer,
		extractor:  NewExtractor(cfg.Tokenizer, cfg.Dictionary, cfg.MaxFeatures, cfg.MaxCorpus),
		sanitizer:  bluemonday.StrictPolicy(),
		maxTags:    cfg.MaxTags,
		threshold:  cfg.ScoreThreshold,
		minLen:     cfg.MinTermLength,
	}
}

// InitModel fits the statistical model on product descriptions. The first successful call wins.
func (g *Generator) InitModel(corpus []string) error {
	docs := make([]string, len(corpus))
	for i, doc := range corpus {
		docs[i] = g.plainText(doc)
	}
	return g.extractor.Fit(docs)
}

// Ready reports whether the statistical model is fitted
func (g *Generator) Ready() bool {
	return g.extractor.Ready()
}

// Keywords returns statistical keywords of text, ErrModelNotReady if the model is not fitted
func (g *Generator) Keywords(text string) ([]string, error) {
	return g.extractor.Keywords(g.plainText(text), g.threshold, g.minLen, g.maxTags)
}

// Generate returns up to MaxTags canonical tags: dictionary matches first, then statistical keywords
// if the model is fitted. Tags differing only in case are merged, the first spelling is kept.
func (g *Generator) Generate(text string) []string {
	text = g.plainText(text)
	tags := g.dict.Match(text)

	// without a fitted model the tags are dictionary-only
	if keywords, err := g.extractor.Keywords(text, g.threshold, g.minLen, g.maxTags); err == nil {
		tags = append(tags, keywords...)
	}

	tags = g.normalizer.Normalize(foldCase(tags))
	if len(tags) > g.maxTags {
		tags = tags[:g.maxTags]
	}
	return tags
}

// Fallback returns category names matching whole words of text, used when Generate yields too few tags
func (g *Generator) Fallback(text string) []string {
	tags := g.normalizer.Normalize(g.dict.MatchWords(g.plainText(text)))
	if len(tags) > g.maxTags {
		tags = tags[:g.maxTags]
	}
	return tags
}

// plainText strips markup from text
func (g *Generator) plainText(text string) string {
	if !strings.ContainsAny(text, "<&") {
		return text
	}
	return html.UnescapeString(g.sanitizer.Sanitize(text))
}

// foldCase drops tags equal to an earlier tag ignoring case
func foldCase(tags []string) []string {
	res := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		res = append(res, tag)
	}
	return res
}
