package entities

import "github.com/shopspring/decimal"

// Planet is a location known to the imperial fleet. Rows are created lazily
// the first time a planet is resolved from the sindicate directory and are
// never updated or deleted afterwards.
type Planet struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"size:128" json:"name"`
	Code           string `gorm:"size:8;uniqueIndex" json:"code"`
	Sector         string `gorm:"size:16" json:"sector"`
	RebelInfluence int    `json:"rebelInfluence"`
}

func (Planet) TableName() string {
	return "planets"
}

var hundred = decimal.NewFromInt(100)

// DefenseCost is derived from the rebel influence and never persisted.
func (p *Planet) DefenseCost() decimal.Decimal {
	return decimal.NewFromInt(int64(p.RebelInfluence)).Div(hundred)
}
