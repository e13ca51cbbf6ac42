package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/getbrick/brickhub.go/common"
	"github.com/getbrick/brickhub.go/db/models"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// Domain failures of the invest transaction. They abort the transaction
// but are not infrastructure errors; the controller maps them to 400s.
var (
	ErrAssetNotFound       = errors.New("asset not found")
	ErrNotEnoughTokens     = errors.New("not enough tokens available")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
)

// InvestResult is returned for a successful purchase.
type InvestResult struct {
	Spent              decimal.Decimal `json:"spent"`
	RemainingBalance   decimal.Decimal `json:"remainingBalance"`
	NewTotalInvestment decimal.Decimal `json:"newTotalInvestment"`
	NewMonthlyYield    decimal.Decimal `json:"newMonthlyYield"`
}

// Invest purchases tokensToBuy tokens of the given asset: it decrements the
// asset's supply, debits the wallet by pricePerToken*tokensToBuy and credits
// the monthly-yield projection, all inside one database transaction. Both
// rows are updated together or not at all. Input shape validation happens
// before this is called; preconditions on store state are checked here,
// against rows locked for the duration of the transaction so concurrent
// purchases cannot oversell the asset or overdraw the wallet.
func (svc *BrickhubService) Invest(ctx context.Context, assetID int64, tokensToBuy int64) (*InvestResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(svc.Config.DatabaseTimeout)*time.Second)
	defer cancel()

	// sqlite has no FOR UPDATE; its single writer serializes transactions
	rowLocks := svc.DB.Dialect().Name() == dialect.PG

	result := &InvestResult{}
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var asset models.Asset
		assetQuery := tx.NewSelect().Model(&asset).Where("id = ?", assetID)
		if rowLocks {
			assetQuery = assetQuery.For("UPDATE")
		}
		if err := assetQuery.Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAssetNotFound
			}
			return err
		}

		if asset.TokensAvailable < tokensToBuy {
			return ErrNotEnoughTokens
		}
		totalCost := asset.PricePerToken.Mul(decimal.NewFromInt(tokensToBuy))

		// lock order is always asset then dashboard
		var dashboard models.Dashboard
		dashboardQuery := tx.NewSelect().Model(&dashboard).Where("id = ?", common.DashboardID)
		if rowLocks {
			dashboardQuery = dashboardQuery.For("UPDATE")
		}
		if err := dashboardQuery.Scan(ctx); err != nil {
			return err
		}

		if dashboard.WalletBalance.LessThan(totalCost) {
			return ErrInsufficientBalance
		}

		// straight-line conversion of the annual yield on the newly
		// invested cost into a monthly projection, not compounded
		addedMonthlyYield := totalCost.Mul(asset.Apy).Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))

		asset.TokensAvailable -= tokensToBuy
		dashboard.WalletBalance = dashboard.WalletBalance.Sub(totalCost)
		dashboard.TotalInvestment = dashboard.TotalInvestment.Add(totalCost)
		dashboard.MonthlyYield = dashboard.MonthlyYield.Add(addedMonthlyYield)

		if _, err := tx.NewUpdate().Model(&asset).
			Column("tokens_available", "updated_at").
			WherePK().Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewUpdate().Model(&dashboard).
			Column("wallet_balance", "total_investment", "monthly_yield", "updated_at").
			WherePK().Exec(ctx); err != nil {
			return err
		}

		result.Spent = totalCost
		result.RemainingBalance = dashboard.WalletBalance
		result.NewTotalInvestment = dashboard.TotalInvestment
		result.NewMonthlyYield = dashboard.MonthlyYield
		return nil
	})
	if err != nil {
		return nil, err
	}

	svc.Logger.Infof("Investment settled asset_id:%v tokens:%v spent:%v", assetID, tokensToBuy, result.Spent)
	return result, nil
}
