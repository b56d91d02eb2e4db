package match

import "time"

// TelemetryNitroKey is the fixed telemetry key nitro consumption is stored
// under during ingestion.
const TelemetryNitroKey = "nitro_used"

// Match is one persisted race result. Records are immutable once stored;
// there is no update or delete path.
type Match struct {
	ID         uint               `gorm:"primaryKey" json:"id"`
	UserID     uint               `gorm:"index;not null" json:"user_id"`
	CarID      *uint              `json:"car_id,omitempty"`
	BatchID    string             `gorm:"index" json:"batch_id,omitempty"`
	Track      string             `json:"track"`
	Position   int                `json:"position"`
	LapTimes   []float64          `gorm:"serializer:json" json:"lap_times"`
	Telemetry  map[string]float64 `gorm:"serializer:json" json:"telemetry,omitempty"`
	Notes      *string            `json:"notes,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}

type IngestResult struct {
	Created int    `json:"created"`
	BatchID string `json:"-"`
}

// Stats summarizes a user's match history. AvgPosition is nil when the user
// has no matches; that is a defined state, not an error.
type Stats struct {
	Matches     int      `json:"matches"`
	Wins        int      `json:"wins"`
	AvgPosition *float64 `json:"avg_position"`
}
