package service_test

import (
	"context"
	"testing"

	"github.com/getbrick/brickhub.go/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// newTestService already seeded once; seeding again must not duplicate
	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, svc.Seed(ctx))

	dashboardCount, err := svc.DB.NewSelect().Model((*models.Dashboard)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dashboardCount)

	assetCount, err := svc.DB.NewSelect().Model((*models.Asset)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, assetCount)
}

func TestSeedDoesNotOverwrite(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Invest(ctx, 1, 10)
	require.NoError(t, err)

	require.NoError(t, svc.Seed(ctx))

	dashboard, err := svc.FindDashboard(ctx)
	require.NoError(t, err)
	assert.True(t, dashboard.WalletBalance.Equal(decimal.NewFromInt(14500)))

	asset, err := svc.FindAsset(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(990), asset.TokensAvailable)
}

func TestListAssetsAscendingOrder(t *testing.T) {
	svc := newTestService(t)

	assets, err := svc.ListAssets(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 4)
	for i := 1; i < len(assets); i++ {
		assert.Less(t, assets[i-1].ID, assets[i].ID)
	}
}
