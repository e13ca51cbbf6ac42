package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/getbrick/brickhub.go/db/models"
	"github.com/getbrick/brickhub.go/lib/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type InvestTestSuite struct {
	suite.Suite
	svc *service.BrickhubService
}

func (suite *InvestTestSuite) SetupTest() {
	suite.svc = newTestService(suite.T())
}

func (suite *InvestTestSuite) dashboard() *models.Dashboard {
	dashboard, err := suite.svc.FindDashboard(context.Background())
	suite.Require().NoError(err)
	return dashboard
}

func (suite *InvestTestSuite) TestInvest() {
	// seeded: wallet 15000, invested 5200, yield 435.50
	// asset 1: Skyline Tower, 50 per token, 8.5% APY, 1000 tokens
	result, err := suite.svc.Invest(context.Background(), 1, 10)
	suite.Require().NoError(err)

	assert.True(suite.T(), result.Spent.Equal(decimal.NewFromInt(500)))
	assert.True(suite.T(), result.RemainingBalance.Equal(decimal.NewFromInt(14500)))
	assert.True(suite.T(), result.NewTotalInvestment.Equal(decimal.NewFromInt(5700)))
	// 435.50 + (500 * 0.085) / 12
	assert.Equal(suite.T(), "439.04", result.NewMonthlyYield.StringFixed(2))

	asset, err := suite.svc.FindAsset(context.Background(), 1)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(990), asset.TokensAvailable)

	dashboard := suite.dashboard()
	assert.True(suite.T(), dashboard.WalletBalance.Equal(decimal.NewFromInt(14500)))
	assert.True(suite.T(), dashboard.TotalInvestment.Equal(decimal.NewFromInt(5700)))
	assert.Equal(suite.T(), "439.04", dashboard.MonthlyYield.StringFixed(2))
}

func (suite *InvestTestSuite) TestInvestAccumulates() {
	before := suite.dashboard()

	first, err := suite.svc.Invest(context.Background(), 2, 3)
	suite.Require().NoError(err)
	second, err := suite.svc.Invest(context.Background(), 3, 4)
	suite.Require().NoError(err)

	// cost basis and balance move by exactly the sum of the purchases
	totalCost := first.Spent.Add(second.Spent)
	assert.True(suite.T(), second.RemainingBalance.Equal(before.WalletBalance.Sub(totalCost)))
	assert.True(suite.T(), second.NewTotalInvestment.Equal(before.TotalInvestment.Add(totalCost)))
}

func (suite *InvestTestSuite) TestInvestAssetNotFound() {
	_, err := suite.svc.Invest(context.Background(), 99, 5)
	assert.ErrorIs(suite.T(), err, service.ErrAssetNotFound)

	dashboard := suite.dashboard()
	assert.True(suite.T(), dashboard.WalletBalance.Equal(decimal.NewFromInt(15000)))
	assert.True(suite.T(), dashboard.TotalInvestment.Equal(decimal.NewFromInt(5200)))
}

func (suite *InvestTestSuite) TestInvestNotEnoughTokens() {
	_, err := suite.svc.Invest(context.Background(), 1, 1001)
	assert.ErrorIs(suite.T(), err, service.ErrNotEnoughTokens)

	asset, err := suite.svc.FindAsset(context.Background(), 1)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(1000), asset.TokensAvailable)
	assert.True(suite.T(), suite.dashboard().WalletBalance.Equal(decimal.NewFromInt(15000)))
}

func (suite *InvestTestSuite) TestInvestInsufficientBalance() {
	// asset 4 costs 210 per token, 100 tokens cost 21000 > 15000 wallet
	_, err := suite.svc.Invest(context.Background(), 4, 100)
	assert.ErrorIs(suite.T(), err, service.ErrInsufficientBalance)

	asset, err := suite.svc.FindAsset(context.Background(), 4)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(250), asset.TokensAvailable)

	dashboard := suite.dashboard()
	assert.True(suite.T(), dashboard.WalletBalance.Equal(decimal.NewFromInt(15000)))
	assert.True(suite.T(), dashboard.TotalInvestment.Equal(decimal.NewFromInt(5200)))
}

func (suite *InvestTestSuite) TestConcurrentInvestsCannotOversell() {
	scarce := &models.Asset{
		Name:            "Single Family Home",
		Location:        "Boise, ID",
		Apy:             decimal.RequireFromString("5.0"),
		PricePerToken:   decimal.NewFromInt(1),
		TokensAvailable: 10,
	}
	_, err := suite.svc.DB.NewInsert().Model(scarce).Exec(context.Background())
	suite.Require().NoError(err)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = suite.svc.Invest(context.Background(), scarce.ID, 6)
		}(i)
	}
	wg.Wait()

	succeeded, rejected := 0, 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(suite.T(), err, service.ErrNotEnoughTokens)
		rejected++
	}
	assert.Equal(suite.T(), 1, succeeded)
	assert.Equal(suite.T(), 1, rejected)

	asset, err := suite.svc.FindAsset(context.Background(), scarce.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(4), asset.TokensAvailable)
	assert.True(suite.T(), asset.TokensAvailable >= 0)
}

func TestInvestSuite(t *testing.T) {
	suite.Run(t, new(InvestTestSuite))
}
