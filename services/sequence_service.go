package services

import (
	"gorm.io/gorm"

	"github.com/brickworks/brickworks-api/models"
)

// Counter names used for generated document numbers
const (
	SequenceOrder   = "order"
	SequenceInvoice = "invoice"
	SequenceRound   = "round"
)

// NextSequence atomically increments the named counter and returns its new
// value. The counter row is created on first use.
func NextSequence(db *gorm.DB, name string) (int64, error) {
	var value int64
	err := db.Transaction(func(tx *gorm.DB) error {
		var seq models.Sequence
		if err := tx.Where(models.Sequence{Name: name}).FirstOrCreate(&seq).Error; err != nil {
			return err
		}
		seq.Value++
		if err := tx.Save(&seq).Error; err != nil {
			return err
		}
		value = seq.Value
		return nil
	})
	return value, err
}
