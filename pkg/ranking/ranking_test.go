package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/shopscope/pkg/domain"
)

func ids(ranked []domain.RankedProduct) []int64 {
	res := make([]int64, len(ranked))
	for i, r := range ranked {
		res[i] = r.ID
	}
	return res
}

func scores(ranked []domain.RankedProduct) []int {
	res := make([]int, len(ranked))
	for i, r := range ranked {
		res[i] = r.Score
	}
	return res
}

func TestByPreference(t *testing.T) {
	products := []*domain.Product{
		{ID: 1, Tags: []string{"服装"}},
		{ID: 2, Tags: []string{"手机", "5G"}},
		{ID: 3, Tags: []string{"笔记本"}},
		{ID: 4, Tags: []string{"5G"}},
		{ID: 5, Tags: nil},
	}

	t.Run("sum of inverse ranks", func(t *testing.T) {
		res := ByPreference(products, []string{"手机", "笔记本", "5G"})
		assert.Equal(t, []int64{2, 3, 4, 5, 1}, ids(res))
		assert.Equal(t, []int{3 + 1, 2, 1, 0, 0}, scores(res))
	})

	t.Run("no preferences keeps newest first", func(t *testing.T) {
		res := ByPreference(products, nil)
		assert.Equal(t, []int64{5, 4, 3, 2, 1}, ids(res))
	})

	t.Run("duplicate product tags counted once", func(t *testing.T) {
		res := ByPreference([]*domain.Product{{ID: 1, Tags: []string{"手机", "手机"}}}, []string{"手机"})
		assert.Equal(t, []int{1}, scores(res))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ByPreference(nil, []string{"手机"}))
	})
}

func TestBySearch(t *testing.T) {
	products := []*domain.Product{
		{ID: 1, Name: "Galaxy Phone", Description: "android"},
		{ID: 2, Name: "Case", Description: "fits any phone"},
		{ID: 3, Name: "Charger", Description: "fast", Tags: []string{"phone"}},
		{ID: 4, Name: "Shirt", Description: "cotton"},
		{ID: 5, Name: "PHONE stand", Description: ""},
	}

	res := BySearch(products, "phone")
	assert.Equal(t, []int64{5, 1, 2, 3}, ids(res))
	assert.Equal(t, []int{NameRelevance, NameRelevance, DescriptionRelevance, TagRelevance}, scores(res))

	t.Run("tag match is exact", func(t *testing.T) {
		res := BySearch(products, "PHONE")
		assert.Equal(t, []int64{5, 1, 2}, ids(res))
	})

	t.Run("blank query", func(t *testing.T) {
		assert.Empty(t, BySearch(products, "  "))
	})
}
