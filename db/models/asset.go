package models

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Asset : Asset Model
// A tokenized real-estate offering with a fixed per-token price and a
// limited token supply. TokensAvailable only decreases, via purchases.
type Asset struct {
	ID              int64           `json:"id" bun:",pk,autoincrement"`
	Name            string          `json:"name" bun:",notnull"`
	Location        string          `json:"location" bun:",notnull"`
	Apy             decimal.Decimal `json:"apy" bun:"type:numeric,notnull"`
	PricePerToken   decimal.Decimal `json:"pricePerToken" bun:"type:numeric,notnull"`
	TokensAvailable int64           `json:"tokensAvailable" bun:",notnull"`
	CreatedAt       time.Time       `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt       bun.NullTime    `json:"updated_at"`
}

func (a *Asset) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		a.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Asset)(nil)
