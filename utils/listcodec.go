package utils

import (
	"encoding/json"
	"strings"

	"github.com/amirulhaziq/jobsheet-api/models"
)

// List-valued form fields (service types, parts) are stored as JSON text in
// a single column. An empty list encodes to the empty string so a blank
// jobsheet stays blank in the database.

// EncodeStringList serializes a list of tags for storage
func EncodeStringList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return ""
	}
	return string(encoded)
}

// DecodeStringList restores a list of tags from its stored encoding
func DecodeStringList(encoded string) []string {
	if strings.TrimSpace(encoded) == "" {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(encoded), &items); err != nil {
		return nil
	}
	return items
}

// EncodePartList serializes the parts table rows for storage
func EncodePartList(parts []models.PartLine) string {
	if len(parts) == 0 {
		return ""
	}
	encoded, err := json.Marshal(parts)
	if err != nil {
		return ""
	}
	return string(encoded)
}

// DecodePartList restores the parts table rows from their stored encoding
func DecodePartList(encoded string) []models.PartLine {
	if strings.TrimSpace(encoded) == "" {
		return nil
	}
	var parts []models.PartLine
	if err := json.Unmarshal([]byte(encoded), &parts); err != nil {
		return nil
	}
	return parts
}
