package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shopscope/pkg/catalog/mocks"
	"github.com/umputun/shopscope/pkg/domain"
	"github.com/umputun/shopscope/pkg/tagging"
)

func TestService_ImportCSV(t *testing.T) {
	var saved []*domain.Product
	store := &mocks.ProductStoreMock{
		CreateProductFunc: func(_ context.Context, p *domain.Product) error {
			p.ID = int64(len(saved) + 1)
			saved = append(saved, p)
			return nil
		},
	}
	svc := NewService(Config{Products: store, Tagger: readyTagger([]string{"手机", "5G", "曲面屏"}, nil)})

	data := "\uFEFFname,stock,price,description\n" +
		"Phone,10,1999.99,5G手机曲面屏\n" +
		"Shirt,5,59.9,\n" +
		"Broken,abc,1.0,\n" +
		"Free,1,-1,\n" +
		",1,1,\n" +
		"Cable,3,0.1\n"

	stats, err := svc.ImportCSV(context.Background(), strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, ImportStats{Imported: 3, Skipped: 3}, stats)
	require.Len(t, saved, 3)

	assert.Equal(t, "Phone", saved[0].Name)
	assert.Equal(t, 10, saved[0].Stock)
	assert.Equal(t, int64(199999), saved[0].PriceCents)
	assert.Equal(t, []string{"手机", "5G", "曲面屏"}, saved[0].Tags)

	assert.Equal(t, int64(5990), saved[1].PriceCents)
	assert.Empty(t, saved[1].Tags)
	assert.Equal(t, "Cable", saved[2].Name)
	assert.Equal(t, int64(10), saved[2].PriceCents)
}

func TestService_ImportCSVFitsModelFirst(t *testing.T) {
	var saved []*domain.Product
	store := &mocks.ProductStoreMock{
		GetDescriptionsFunc: func(context.Context, int) ([]string, error) { return []string{"旗舰手机"}, nil },
		CreateProductFunc: func(_ context.Context, p *domain.Product) error {
			saved = append(saved, p)
			return nil
		},
	}
	ready := false
	tagger := &mocks.TaggerMock{
		ReadyFunc: func() bool { return ready },
		InitModelFunc: func([]string) error {
			assert.Empty(t, saved, "model fitted before any row is saved")
			ready = true
			return nil
		},
		GenerateFunc: func(string) []string { return []string{"a", "b", "c"} },
	}
	svc := NewService(Config{Products: store, Tagger: tagger, CorpusSize: 3})

	data := "name,stock,price,description\n" +
		"Keyboard,5,299,机械键盘\n" +
		"Box,1,1,\n" +
		"Mouse,5,99,无线鼠标\n" +
		"Headset,5,199,降噪耳机\n"
	stats, err := svc.ImportCSV(context.Background(), strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Imported)
	require.Len(t, tagger.InitModelCalls(), 1)
	assert.Equal(t, []string{"旗舰手机", "机械键盘", "无线鼠标"}, tagger.InitModelCalls()[0].Corpus, "capped by corpus size")
}

func TestService_ImportCSVRealTagger(t *testing.T) {
	var saved []*domain.Product
	store := &mocks.ProductStoreMock{
		GetDescriptionsFunc: func(context.Context, int) ([]string, error) { return nil, nil },
		CreateProductFunc: func(_ context.Context, p *domain.Product) error {
			p.ID = int64(len(saved) + 1)
			saved = append(saved, p)
			return nil
		},
	}
	gen := tagging.NewGenerator(tagging.Config{Tokenizer: tagging.NGramTokenizer{MinN: 2, MaxN: 3}})
	svc := NewService(Config{Products: store, Tagger: gen})

	data := "name,stock,price,description\n" +
		"Keyboard,5,299,机械键盘 红轴\n" +
		"Mouse,5,99,无线鼠标 静音\n" +
		"Headset,5,199,降噪耳机 蓝牙\n" +
		"Monitor,5,1299,曲面显示器 高刷\n"
	stats, err := svc.ImportCSV(context.Background(), strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Imported)
	require.True(t, gen.Ready())

	for _, text := range []string{"机械键盘 红轴", "曲面显示器 高刷"} {
		kw, err := gen.Keywords(text)
		require.NoError(t, err)
		assert.NotEmpty(t, kw, "vocabulary covers %q", text)
	}
	require.Len(t, saved, 4)
	for _, p := range saved {
		assert.NotEmpty(t, p.Tags, p.Name)
	}
}

func TestService_ImportCSVErrors(t *testing.T) {
	svc := NewService(Config{Products: &mocks.ProductStoreMock{
		CreateProductFunc: func(context.Context, *domain.Product) error { return errors.New("disk full") },
	}, Tagger: readyTagger(nil, nil)})

	_, err := svc.ImportCSV(context.Background(), strings.NewReader(""))
	require.Error(t, err)

	_, err = svc.ImportCSV(context.Background(), strings.NewReader("name,price\nx,1\n"))
	require.EqualError(t, err, `csv header misses column "stock"`)

	stats, err := svc.ImportCSV(context.Background(), strings.NewReader("stock,name,price\n1,x,2\n"))
	require.EqualError(t, err, `import csv line 2: create product "x": disk full`)
	assert.Zero(t, stats.Imported)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1999.99", 199999, false},
		{"0.1", 10, false},
		{"12", 1200, false},
		{"0.005", 1, false},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePrice(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
