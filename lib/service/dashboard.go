package service

import (
	"context"

	"github.com/getbrick/brickhub.go/common"
	"github.com/getbrick/brickhub.go/db/models"
)

// FindDashboard loads the singleton dashboard row. A missing row is
// reported as sql.ErrNoRows; callers decide how to surface that.
func (svc *BrickhubService) FindDashboard(ctx context.Context) (*models.Dashboard, error) {
	var dashboard models.Dashboard

	err := svc.DB.NewSelect().Model(&dashboard).Where("id = ?", common.DashboardID).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &dashboard, nil
}
