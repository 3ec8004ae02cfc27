package tagging

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_DictionaryOnly(t *testing.T) {
	g := NewGenerator(Config{})
	assert.False(t, g.Ready())

	tags := g.Generate("5G手机曲面屏")
	assert.ElementsMatch(t, []string{"手机", "5G", "曲面屏"}, tags)
	assert.Equal(t, tags, g.Generate("5G手机曲面屏"), "deterministic")

	_, err := g.Keywords("5G手机曲面屏")
	require.ErrorIs(t, err, ErrModelNotReady)
}

func TestGenerator_MaxTags(t *testing.T) {
	g := NewGenerator(Config{})
	tags := g.Generate("手机 5G 曲面屏 摄像头 骁龙 笔记本 游戏本")
	assert.Equal(t, []string{"手机", "5G", "曲面屏", "摄像头", "骁龙"}, tags)

	g = NewGenerator(Config{MaxTags: 2})
	assert.Equal(t, []string{"手机", "5G"}, g.Generate("5G手机曲面屏"))
}

func TestGenerator_Synonyms(t *testing.T) {
	g := NewGenerator(Config{Dictionary: NewDictionary([]Category{{Name: "笔电", Keywords: []string{"手提电脑"}}}, nil)})
	assert.Equal(t, []string{"笔记本电脑"}, g.Generate("轻薄笔电 手提电脑"))

	g = NewGenerator(Config{
		Dictionary: NewDictionary([]Category{{Name: "phone"}}, nil),
		Normalizer: NewNormalizer([]Synonym{{Canonical: "smartphone", Variants: []string{"phone"}}}),
	})
	assert.Equal(t, []string{"smartphone"}, g.Generate("a Phone"))
}

func TestGenerator_WithModel(t *testing.T) {
	g := NewGenerator(Config{Tokenizer: wsTokenizer})
	require.NoError(t, g.InitModel([]string{"手机 旗舰 拍照", "笔记本 轻薄 办公", "服装 纯棉 舒适", "手机 续航 拍照", ""}))
	require.True(t, g.Ready())

	kw, err := g.Keywords("旗舰 手机 续航")
	require.NoError(t, err)
	assert.Equal(t, []string{"旗舰", "续航", "手机"}, kw)

	tags := g.Generate("旗舰 手机 续航")
	assert.Equal(t, []string{"手机", "旗舰", "续航"}, tags, "dictionary first, duplicates merged")
}

func TestGenerator_CaseFolding(t *testing.T) {
	g := NewGenerator(Config{Tokenizer: wsTokenizer})
	require.NoError(t, g.InitModel([]string{"5G 手机", "服装 纯棉"}))

	assert.Equal(t, []string{"手机", "5G"}, g.Generate("5G 手机"), "statistical 5g folded into dictionary 5G")
}

func TestGenerator_Markup(t *testing.T) {
	g := NewGenerator(Config{})
	assert.Equal(t, []string{"手机", "5G"}, g.Generate(`<p class="desc"><b>5G</b> 手机 &amp; 配件</p>`))
}

func TestGenerator_Fallback(t *testing.T) {
	g := NewGenerator(Config{})
	assert.Equal(t, []string{"手机"}, g.Fallback("我的 <b>手机</b>"))
	assert.Empty(t, g.Fallback("手机壳"))
}

func TestGenerator_ConcurrentUse(t *testing.T) {
	g := NewGenerator(Config{Tokenizer: wsTokenizer})
	corpus := []string{"手机 旗舰 拍照", "笔记本 轻薄 办公"}

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.InitModel(corpus))
		}()
		go func() {
			defer wg.Done()
			tags := g.Generate("旗舰 手机")
			assert.LessOrEqual(t, len(tags), 5)
			assert.Contains(t, tags, "手机")
		}()
	}
	wg.Wait()
	assert.True(t, g.Ready())
}
