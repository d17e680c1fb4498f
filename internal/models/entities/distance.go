package entities

import "github.com/shopspring/decimal"

// Distance is a directed pairing of origin/destination planet codes with a
// travel duration in lunar years. Same lifecycle as Planet: inserted on
// first remote fetch, never mutated.
type Distance struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Origin      string          `gorm:"size:8;uniqueIndex:idx_distances_pair" json:"origin"`
	Destination string          `gorm:"size:8;uniqueIndex:idx_distances_pair" json:"destination"`
	LunarYears  decimal.Decimal `gorm:"type:numeric" json:"lunarYears"`
}

func (Distance) TableName() string {
	return "distances"
}

var daysPerLunarYear = decimal.NewFromInt(365)

// LunarDays is always recomputed from the persisted lunar years.
func (d *Distance) LunarDays() decimal.Decimal {
	return d.LunarYears.Mul(daysPerLunarYear)
}
