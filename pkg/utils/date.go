package utils

import "time"

// ValidateDate valida uma data no formato YYYY-MM-DD; vazio é permitido
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return nil
	}

	_, err := time.Parse("2006-01-02", dateStr)
	return err
}
