package service

import (
	"context"

	"github.com/getbrick/brickhub.go/common"
	"github.com/getbrick/brickhub.go/db/models"
	"github.com/shopspring/decimal"
)

// Seed populates a fresh database with the singleton dashboard and a small
// asset catalog. Each table is seeded only when it is empty, so running the
// bootstrap repeatedly never duplicates or overwrites data.
func (svc *BrickhubService) Seed(ctx context.Context) error {
	dashboardCount, err := svc.DB.NewSelect().Model((*models.Dashboard)(nil)).Count(ctx)
	if err != nil {
		return err
	}
	if dashboardCount == 0 {
		dashboard := &models.Dashboard{
			ID:              common.DashboardID,
			WalletBalance:   decimal.NewFromInt(15000),
			TotalInvestment: decimal.NewFromInt(5200),
			MonthlyYield:    decimal.RequireFromString("435.50"),
		}
		if _, err := svc.DB.NewInsert().Model(dashboard).Exec(ctx); err != nil {
			return err
		}
		svc.Logger.Infof("Seeded dashboard id:%v", dashboard.ID)
	}

	assetCount, err := svc.DB.NewSelect().Model((*models.Asset)(nil)).Count(ctx)
	if err != nil {
		return err
	}
	if assetCount == 0 {
		assets := []models.Asset{
			{
				Name:            "Skyline Tower",
				Location:        "Austin, TX",
				Apy:             decimal.RequireFromString("8.5"),
				PricePerToken:   decimal.NewFromInt(50),
				TokensAvailable: 1000,
			},
			{
				Name:            "Harborview Lofts",
				Location:        "Seattle, WA",
				Apy:             decimal.RequireFromString("7.2"),
				PricePerToken:   decimal.NewFromInt(120),
				TokensAvailable: 500,
			},
			{
				Name:            "Palm Grove Residences",
				Location:        "Miami, FL",
				Apy:             decimal.RequireFromString("9.1"),
				PricePerToken:   decimal.NewFromInt(75),
				TokensAvailable: 800,
			},
			{
				Name:            "Old Town Arcade",
				Location:        "Chicago, IL",
				Apy:             decimal.RequireFromString("6.4"),
				PricePerToken:   decimal.NewFromInt(210),
				TokensAvailable: 250,
			},
		}
		if _, err := svc.DB.NewInsert().Model(&assets).Exec(ctx); err != nil {
			return err
		}
		svc.Logger.Infof("Seeded %d assets", len(assets))
	}

	return nil
}
