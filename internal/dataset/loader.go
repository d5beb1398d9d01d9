package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// Load reads the matches and deliveries tables from the given CSV paths.
// A missing, unreadable, or malformed file fails the whole load; there is
// no retry and no partial dataset.
func Load(ctx context.Context, matchesPath, deliveriesPath string) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	var matches []MatchRecord
	if err := readCSV(matchesPath, &matches); err != nil {
		return nil, fmt.Errorf("matches table: %w", err)
	}

	var deliveries []DeliveryRecord
	if err := readCSV(deliveriesPath, &deliveries); err != nil {
		return nil, fmt.Errorf("deliveries table: %w", err)
	}

	return &Dataset{Matches: matches, Deliveries: deliveries}, nil
}

// readCSV decodes one CSV file into out, which must be a pointer to a slice
// of records with csv struct tags.
func readCSV(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDataUnavailable, path, err)
	}
	return nil
}
