package tagging

import (
	"errors"
	"math"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"
)

// ErrModelNotReady is returned by statistical extraction before a model is fitted
var ErrModelNotReady = errors.New("statistical model is not fitted")

// ErrEmptyCorpus is returned when a corpus has no usable documents
var ErrEmptyCorpus = errors.New("corpus has no non-empty documents")

// Term is a vocabulary term with its importance in a document
type Term struct {
	Term  string
	Score float64
}

// Extractor scores terms of a document by TF-IDF against a corpus. The model is fitted once
// per extractor, later fits are ignored.
type Extractor struct {
	tokenizer   Tokenizer
	dict        *Dictionary
	maxFeatures int
	maxCorpus   int

	once  sync.Once
	model atomic.Pointer[tfidfModel]
}

// tfidfModel is immutable after fit
type tfidfModel struct {
	vocab []string // sorted lexically
	index map[string]int
	idf   []float64
}

// NewExtractor makes an extractor. Stop words of dict are excluded from the vocabulary.
func NewExtractor(tokenizer Tokenizer, dict *Dictionary, maxFeatures, maxCorpus int) *Extractor {
	if maxFeatures <= 0 {
		maxFeatures = 500
	}
	if maxCorpus <= 0 {
		maxCorpus = 1000
	}
	if dict == nil {
		dict = NewDictionary(nil, nil)
	}
	return &Extractor{tokenizer: tokenizer, dict: dict, maxFeatures: maxFeatures, maxCorpus: maxCorpus}
}

// Fit builds the model from up to maxCorpus non-empty documents. Only the first fit with a usable
// corpus builds a model, concurrent callers wait for it and later calls are no-ops.
func (e *Extractor) Fit(corpus []string) error {
	docs := make([]string, 0, min(len(corpus), e.maxCorpus))
	for _, doc := range corpus {
		if len(docs) >= e.maxCorpus {
			break
		}
		if strings.TrimSpace(doc) != "" {
			docs = append(docs, doc)
		}
	}
	if len(docs) == 0 {
		return ErrEmptyCorpus
	}

	fitted := false
	e.once.Do(func() {
		m := e.build(docs)
		e.model.Store(m)
		fitted = true
		lgr.Printf("[INFO] tfidf model fitted on %d documents, %d terms", len(docs), len(m.vocab))
	})
	if !fitted {
		lgr.Printf("[DEBUG] tfidf model already fitted, corpus of %d documents ignored", len(docs))
	}
	return nil
}

// Ready reports whether the model is fitted
func (e *Extractor) Ready() bool {
	return e.model.Load() != nil
}

// Vocabulary returns model terms in lexical order
func (e *Extractor) Vocabulary() ([]string, error) {
	m := e.model.Load()
	if m == nil {
		return nil, ErrModelNotReady
	}
	return append([]string(nil), m.vocab...), nil
}

// Score returns vocabulary terms present in text with their L2-normalized TF-IDF scores, in vocabulary order
func (e *Extractor) Score(text string) ([]Term, error) {
	m := e.model.Load()
	if m == nil {
		return nil, ErrModelNotReady
	}

	counts := map[int]float64{}
	for _, term := range e.terms(text) {
		if idx, ok := m.index[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return []Term{}, nil
	}

	idxs := make([]int, 0, len(counts))
	norm := 0.0
	for idx, cnt := range counts {
		w := cnt * m.idf[idx]
		counts[idx] = w
		norm += w * w
		idxs = append(idxs, idx)
	}
	norm = math.Sqrt(norm)
	sort.Ints(idxs)

	res := make([]Term, 0, len(idxs))
	for _, idx := range idxs {
		res = append(res, Term{Term: m.vocab[idx], Score: counts[idx] / norm})
	}
	return res, nil
}

// Keywords returns up to limit terms of text scored above threshold and at least minLen runes long,
// ordered by score descending, ties in vocabulary order
func (e *Extractor) Keywords(text string, threshold float64, minLen, limit int) ([]string, error) {
	terms, err := e.Score(text)
	if err != nil {
		return nil, err
	}
	keep := terms[:0]
	for _, t := range terms {
		if t.Score > threshold && utf8.RuneCountInString(t.Term) >= minLen {
			keep = append(keep, t)
		}
	}
	sort.SliceStable(keep, func(i, j int) bool { return keep[i].Score > keep[j].Score })
	if len(keep) > max(limit, 0) {
		keep = keep[:max(limit, 0)]
	}
	res := make([]string, len(keep))
	for i, t := range keep {
		res[i] = t.Term
	}
	return res, nil
}

// terms lower-cases and tokenizes text, dropping blanks and stop words
func (e *Extractor) terms(text string) []string {
	tokens := e.tokenizer.Tokenize(strings.ToLower(text))
	res := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" || e.dict.IsStopWord(tok) {
			continue
		}
		res = append(res, tok)
	}
	return res
}

// build selects maxFeatures most frequent terms and computes smoothed idf: ln((1+n)/(1+df)) + 1
func (e *Extractor) build(docs []string) *tfidfModel {
	freq := map[string]int{}
	df := map[string]int{}
	for _, doc := range docs {
		seen := map[string]bool{}
		for _, term := range e.terms(doc) {
			freq[term]++
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	vocab := make([]string, 0, len(freq))
	for term := range freq {
		vocab = append(vocab, term)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if freq[vocab[i]] != freq[vocab[j]] {
			return freq[vocab[i]] > freq[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > e.maxFeatures {
		vocab = vocab[:e.maxFeatures]
	}
	sort.Strings(vocab)

	m := &tfidfModel{vocab: vocab, index: make(map[string]int, len(vocab)), idf: make([]float64, len(vocab))}
	n := float64(len(docs))
	for i, term := range vocab {
		m.index[term] = i
		m.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return m
}
