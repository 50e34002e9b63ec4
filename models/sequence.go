package models

// Sequence backs the human-readable order/invoice/round numbers.
// One row per counter name, incremented inside a transaction so numbering
// survives restarts and multiple instances sharing a database.
type Sequence struct {
	Name  string `gorm:"primaryKey" json:"name"`
	Value int64  `gorm:"not null;default:0" json:"value"`
}

// TableName specifies the table name for the Sequence model
func (Sequence) TableName() string {
	return "sequences"
}
