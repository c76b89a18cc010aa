package model

import "time"

// Appliance represents a single stored appliance record.
//
// EnergyKwh is the normalized yearly energy consumption; it is nil when the
// record was created without an image or no value could be detected on the
// label. Price and EnergyRate are stored exactly as submitted; both feed the
// cost arithmetic in the comparison engine.
type Appliance struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"size:256" json:"name"`
	EnergyKwh  *float64  `json:"energy_kwh"`
	Price      float64   `json:"price"`
	EnergyRate float64   `json:"energy_rate"`
	CreatedAt  time.Time `gorm:"not null" json:"timestamp"`
}
