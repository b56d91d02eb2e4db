package catalog

// Car is a reference catalog entry. BaseStats holds named numeric
// performance attributes (speed, acceleration, nitro_capacity, ...).
type Car struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	Name      string             `gorm:"uniqueIndex;not null" json:"name"`
	Rarity    string             `json:"rarity,omitempty"`
	BaseStats map[string]float64 `gorm:"serializer:json" json:"base_stats"`
}

type CarRequest struct {
	Name      string             `json:"name"`
	Rarity    string             `json:"rarity,omitempty"`
	BaseStats map[string]float64 `json:"base_stats"`
}
