package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shopscope/pkg/domain"
	"github.com/umputun/shopscope/pkg/repository"
)

func TestSchedulerService(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()

	svc := NewSchedulerService(repos.Product, repos.Setting)

	p := &domain.Product{Name: "phone", Description: "旗舰手机"}
	require.NoError(t, repos.Product.CreateProduct(ctx, p))

	products, err := svc.GetUntaggedProducts(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, p.ID, products[0].ID)

	// stock edited after the page was read stays intact
	p.Stock = 7
	require.NoError(t, repos.Product.UpdateProduct(ctx, p))
	require.NoError(t, svc.UpdateProductTags(ctx, p.ID, []string{"手机", "旗舰"}))
	stored, err := repos.Product.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"手机", "旗舰"}, stored.Tags)
	assert.Equal(t, 7, stored.Stock)

	products, err = svc.GetUntaggedProducts(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, products)

	require.NoError(t, svc.SetSetting(ctx, "k", "v"))
	val, err := svc.GetSetting(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}
