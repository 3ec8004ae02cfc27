package tagging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictionary_Match(t *testing.T) {
	d := DefaultDictionary()

	tbl := []struct {
		text string
		want []string
	}{
		{"5G手机曲面屏", []string{"手机", "5G", "曲面屏"}},
		{"新款rtx 4090 游戏本", []string{"游戏本", "RTX"}},
		{"纯棉修身冬季加厚服装", []string{"服装", "纯棉", "修身", "加厚", "冬季"}},
		{"I7 轻薄笔记本", []string{"笔记本", "轻薄", "i7"}},
		{"nothing to see", nil},
		{"", nil},
	}

	for _, tt := range tbl {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Match(tt.text))
		})
	}
}

func TestDictionary_MatchWords(t *testing.T) {
	d := DefaultDictionary()
	assert.Equal(t, []string{"手机"}, d.MatchWords("我的 手机, 很好的 手机"))
	assert.Empty(t, d.MatchWords("5G手机曲面屏"), "only whole words count")

	d = NewDictionary([]Category{{Name: "phone"}, {Name: "的"}}, []string{"的"})
	assert.Equal(t, []string{"phone"}, d.MatchWords("Phone 的 case"), "stop words skipped")
}

func TestDictionary_Immutable(t *testing.T) {
	cats := []Category{{Name: "a", Keywords: []string{"b"}}, {Name: ""}}
	d := NewDictionary(cats, []string{"x", "x", ""})
	cats[0].Keywords[0] = "changed"

	assert.Equal(t, []string{"a", "b"}, d.Match("a b"))
	assert.Equal(t, []string{"x"}, d.StopWords())
	assert.True(t, d.IsStopWord("x"))
	assert.False(t, d.IsStopWord(""))
}
