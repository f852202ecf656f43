package report

import (
	"encoding/json"
	"os"

	"contribstats/internal/domain"
)

// WriteJSON saves the full report as a pretty-printed JSON document.
func WriteJSON(rep *domain.Report, filename string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
