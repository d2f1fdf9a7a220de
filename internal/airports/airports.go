package airports

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Airport is one entry of the static directory.
type Airport struct {
	Code    string `json:"code"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Directory holds the airport list, loaded once at startup. Read-only after Load.
type Directory struct {
	airports []Airport
	byCode   map[string]Airport
}

var sampleAirports = []Airport{
	{Code: "DEL", City: "Delhi", Country: "India"},
	{Code: "BOM", City: "Mumbai", Country: "India"},
	{Code: "DXB", City: "Dubai", Country: "UAE"},
	{Code: "LHR", City: "London", Country: "UK"},
	{Code: "JFK", City: "New York", Country: "USA"},
}

// Load reads the airport list from path. If the file does not exist yet,
// a sample directory is written first so a fresh checkout works out of the box.
func Load(path string, log *zap.Logger) (*Directory, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Info("Airports file missing, writing sample directory", zap.String("path", path))
		if err := writeSample(path); err != nil {
			return nil, fmt.Errorf("write sample airports file %s: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read airports file %s: %w", path, err)
	}

	var list []Airport
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse airports file %s: %w", path, err)
	}

	byCode := make(map[string]Airport, len(list))
	for _, a := range list {
		byCode[a.Code] = a
	}

	log.Info("Airport directory loaded", zap.Int("count", len(list)))

	return &Directory{airports: list, byCode: byCode}, nil
}

func writeSample(path string) error {
	data, err := json.MarshalIndent(sampleAirports, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// List returns all airports in file order.
func (d *Directory) List() []Airport {
	return d.airports
}

// Valid reports whether code is a known airport code. Matching is exact.
func (d *Directory) Valid(code string) bool {
	_, ok := d.byCode[code]
	return ok
}
