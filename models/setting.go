package models

// Setting is one entry in the flat key/value configuration bag
// (companyName, taxRate, deliveryCharge, laborCharge, ...)
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `gorm:"not null" json:"value"`
}

// TableName specifies the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
