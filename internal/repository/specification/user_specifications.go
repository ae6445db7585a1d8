package specification

import "gorm.io/gorm"

type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

type UserOwnedBy struct {
	UserID uint
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByMedicineID struct {
	MedicineID uint
}

func (s ByMedicineID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("medicine_id = ?", s.MedicineID)
}
