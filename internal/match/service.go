package match

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asphaltlabs/asphalt-companion/internal/apperrors"
	"github.com/asphaltlabs/asphalt-companion/internal/catalog"
)

// CarResolver is the slice of the catalog service ingestion needs.
type CarResolver interface {
	LookupByName(name string) (*catalog.Car, error)
}

type MatchService struct {
	repo MatchRepository
	cars CarResolver
}

func NewMatchService(repo MatchRepository, cars CarResolver) *MatchService {
	return &MatchService{repo: repo, cars: cars}
}

// Ingest parses an uploaded CSV table (columns: track, position, lap_times,
// nitro_used, car_name) and persists one record per readable row, all bound
// to the authenticated userID. Malformed fields degrade to safe defaults via
// the normalizers; unknown car names degrade to a null car reference. The
// whole batch commits in one transaction.
func (s *MatchService) Ingest(r io.Reader, userID uint) (*IngestResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewAppError(400, "unreadable csv upload", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	batchID := uuid.New().String()
	now := time.Now().UTC()
	records := []*Match{}
	for {
		row, errRead := reader.Read()
		if errRead == io.EOF {
			break
		}
		if errRead != nil {
			var parseErr *csv.ParseError
			if errors.As(errRead, &parseErr) {
				// broken line; the reader resumes on the next one
				continue
			}
			// an I/O failure never clears on retry, so the call aborts
			return nil, apperrors.NewAppError(400, "unreadable csv upload", errRead)
		}
		field := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		carID, errCar := s.resolveCar(field("car_name"))
		if errCar != nil {
			return nil, errCar
		}

		records = append(records, &Match{
			// identity comes from the validated token, never from the row
			UserID:   userID,
			CarID:    carID,
			BatchID:  batchID,
			Track:    strings.TrimSpace(field("track")),
			Position: parsePosition(field("position")),
			LapTimes: parseLapTimes(field("lap_times")),
			Telemetry: map[string]float64{
				TelemetryNitroKey: parseTelemetryValue(field("nitro_used")),
			},
			OccurredAt: now,
		})
	}

	if err := s.repo.SaveBatch(records); err != nil {
		return nil, apperrors.NewAppError(500, "error saving match records", err)
	}
	return &IngestResult{Created: len(records), BatchID: batchID}, nil
}

// resolveCar maps a car name to its catalog id. Unknown or empty names
// resolve to nil; only a storage failure is an error.
func (s *MatchService) resolveCar(name string) (*uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	car, err := s.cars.LookupByName(name)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, nil
	}
	id := car.ID
	return &id, nil
}

// StatsFor recomputes the summary from persisted records on every call.
func (s *MatchService) StatsFor(userID uint) (*Stats, error) {
	records, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Matches: len(records)}
	if len(records) == 0 {
		return stats, nil
	}

	sum := 0
	for _, m := range records {
		if m.Position == 1 {
			stats.Wins++
		}
		sum += m.Position
	}
	avg := float64(sum) / float64(len(records))
	stats.AvgPosition = &avg
	return stats, nil
}
