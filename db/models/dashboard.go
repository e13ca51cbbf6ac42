package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Dashboard : Dashboard Model
// There is exactly one row (see common.DashboardID) summarizing the user's
// aggregate financial position. Balances are only mutated by the invest
// transaction, never directly by clients.
type Dashboard struct {
	ID              int64           `json:"id" bun:",pk"`
	WalletBalance   decimal.Decimal `json:"walletBalance" bun:"type:numeric,notnull"`
	TotalInvestment decimal.Decimal `json:"totalInvestment" bun:"type:numeric,notnull"`
	MonthlyYield    decimal.Decimal `json:"monthlyYield" bun:"type:numeric,notnull"`
	CreatedAt       time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt       bun.NullTime    `json:"updated_at"`
}

func (d *Dashboard) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		d.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Dashboard)(nil)
