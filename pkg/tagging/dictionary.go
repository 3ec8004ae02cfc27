// Package tagging generates product tags from free-text descriptions. It combines
// dictionary matching of known categories and keywords, TF-IDF keyword extraction over a
// product corpus, and synonym folding into canonical tags.
package tagging

import (
	"regexp"
	"strings"
)

// Category is a product category with keywords specific to it
type Category struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Dictionary is an immutable set of categories and stop words
type Dictionary struct {
	categories []Category
	stopWords  map[string]struct{}
	stopList   []string
}

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// NewDictionary makes a dictionary, inputs are copied
func NewDictionary(categories []Category, stopWords []string) *Dictionary {
	d := &Dictionary{
		categories: make([]Category, 0, len(categories)),
		stopWords:  make(map[string]struct{}, len(stopWords)),
	}
	for _, c := range categories {
		if c.Name == "" {
			continue
		}
		d.categories = append(d.categories, Category{Name: c.Name, Keywords: append([]string(nil), c.Keywords...)})
	}
	for _, w := range stopWords {
		if _, ok := d.stopWords[w]; ok || w == "" {
			continue
		}
		d.stopWords[w] = struct{}{}
		d.stopList = append(d.stopList, w)
	}
	return d
}

// DefaultCategories returns built-in categories
func DefaultCategories() []Category {
	return []Category{
		{Name: "手机", Keywords: []string{"5G", "曲面屏", "摄像头", "骁龙"}},
		{Name: "笔记本", Keywords: []string{"游戏本", "轻薄", "i7", "RTX"}},
		{Name: "服装", Keywords: []string{"纯棉", "修身", "加厚", "冬季"}},
	}
}

// DefaultStopWords returns built-in stop words
func DefaultStopWords() []string {
	return []string{"的", "了", "是", "我", "这", "和", "在", "有", "可以", "这个", "一个"}
}

// DefaultDictionary returns the dictionary with built-in categories and stop words
func DefaultDictionary() *Dictionary {
	return NewDictionary(DefaultCategories(), DefaultStopWords())
}

// Match returns category names and keywords found as substrings of text, ignoring case.
// The result follows dictionary order, each category followed by its keywords.
func (d *Dictionary) Match(text string) []string {
	lower := strings.ToLower(text)
	var res []string
	seen := map[string]bool{}
	add := func(tag string) {
		if !seen[tag] && strings.Contains(lower, strings.ToLower(tag)) {
			seen[tag] = true
			res = append(res, tag)
		}
	}
	for _, c := range d.categories {
		add(c.Name)
		for _, kw := range c.Keywords {
			add(kw)
		}
	}
	return res
}

// MatchWords returns category names equal to a whole word of text, skipping stop words.
// It's a coarse matcher used when the regular tagging yields too little.
func (d *Dictionary) MatchWords(text string) []string {
	names := make(map[string]bool, len(d.categories))
	for _, c := range d.categories {
		names[strings.ToLower(c.Name)] = true
	}
	var res []string
	seen := map[string]bool{}
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if d.IsStopWord(w) || !names[w] || seen[w] {
			continue
		}
		seen[w] = true
		res = append(res, w)
	}
	return res
}

// IsStopWord reports whether the word is a stop word
func (d *Dictionary) IsStopWord(w string) bool {
	_, ok := d.stopWords[w]
	return ok
}

// StopWords returns stop words in configured order
func (d *Dictionary) StopWords() []string {
	return append([]string(nil), d.stopList...)
}
