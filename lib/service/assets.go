package service

import (
	"context"

	"github.com/getbrick/brickhub.go/db/models"
)

func (svc *BrickhubService) FindAsset(ctx context.Context, assetID int64) (*models.Asset, error) {
	var asset models.Asset

	err := svc.DB.NewSelect().Model(&asset).Where("id = ?", assetID).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// ListAssets returns the full asset catalog in stable ascending-id order.
func (svc *BrickhubService) ListAssets(ctx context.Context) ([]models.Asset, error) {
	assets := []models.Asset{}

	err := svc.DB.NewSelect().Model(&assets).OrderExpr("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return assets, nil
}
