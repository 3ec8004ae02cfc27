package tagging

import (
	"strings"
	"unicode"

	"github.com/go-ego/gse"
)

// Tokenizer splits text into terms
type Tokenizer interface {
	Tokenize(text string) []string
}

// TokenizerFunc adapts a function to Tokenizer
type TokenizerFunc func(text string) []string

// Tokenize calls the function
func (f TokenizerFunc) Tokenize(text string) []string { return f(text) }

// Segmenter is a dictionary-based word segmenter for Chinese text with alphanumeric words kept intact
type Segmenter struct {
	seg *gse.Segmenter
}

// NewSegmenter loads segmentation dictionaries, the embedded default one if no files given
func NewSegmenter(dictFiles ...string) (*Segmenter, error) {
	seg, err := gse.New(dictFiles...)
	if err != nil {
		return nil, err
	}
	return &Segmenter{seg: &seg}, nil
}

// Tokenize segments text into words, with HMM for unknown words
func (s *Segmenter) Tokenize(text string) []string {
	return s.seg.Cut(text, true)
}

// NGramTokenizer splits text on anything but letters and digits. Non-Han runs are kept as words,
// Han runs are emitted as n-grams of MinN..MaxN runes, runs shorter than MinN as is.
// It needs no dictionary, at the price of emitting meaningless grams along with real words.
type NGramTokenizer struct {
	MinN, MaxN int
}

// Tokenize returns words and Han n-grams in text order
func (t NGramTokenizer) Tokenize(text string) []string {
	minN, maxN := t.MinN, t.MaxN
	if minN <= 0 {
		minN = 2
	}
	if maxN < minN {
		maxN = minN
	}

	var res []string
	fields := strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
	for _, field := range fields {
		for _, run := range splitHan(field) {
			runes := []rune(run)
			if !unicode.Is(unicode.Han, runes[0]) || len(runes) < minN {
				res = append(res, run)
				continue
			}
			for n := minN; n <= maxN && n <= len(runes); n++ {
				for i := 0; i+n <= len(runes); i++ {
					res = append(res, string(runes[i:i+n]))
				}
			}
		}
	}
	return res
}

// splitHan splits s into runs of Han and non-Han runes
func splitHan(s string) []string {
	var res []string
	start, prevHan := 0, false
	for i, r := range s {
		isHan := unicode.Is(unicode.Han, r)
		if i > 0 && isHan != prevHan {
			res = append(res, s[start:i])
			start = i
		}
		prevHan = isHan
	}
	if start < len(s) {
		res = append(res, s[start:])
	}
	return res
}
