package services

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirulhaziq/jobsheet-api/models"
)

// SeedCounter creates the singleton counter row if it does not exist yet.
// Safe to call on every startup.
func SeedCounter(db *gorm.DB, seed int64) error {
	counter := models.Counter{ID: 1, LastNumber: seed}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&counter).Error
}

// AllocateJobsheetNumber increments the shared counter and returns the new
// jobsheet number, then ensures a draft row exists for it. The increment is
// a single UPDATE ... RETURNING statement so concurrent allocations across
// any number of server processes can never hand out the same number.
func AllocateJobsheetNumber(db *gorm.DB) (int64, error) {
	var next int64
	err := db.Raw(
		`UPDATE js_counter SET last_number = last_number + 1 WHERE id = 1 RETURNING last_number`,
	).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	if next == 0 {
		return 0, fmt.Errorf("jobsheet counter row is missing")
	}

	// Insert the draft row, ignoring the insert if a row with that number
	// already exists. Duplicate allocation should not occur under correct
	// sequencing; the conflict clause just keeps a retry harmless.
	draft := models.Jobsheet{
		JSNumber: next,
		Status:   models.StatusDraft,
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "js_number"}},
		DoNothing: true,
	}).Create(&draft).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}
