package model

import "time"

type User struct {
	Id             uint      `gorm:"primaryKey"`
	Username       string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	HashedPassword string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`

	SavedMedicines []SavedMedicine `gorm:"foreignKey:UserId"`
}

func (User) TableName() string {
	return "users"
}

type SavedMedicine struct {
	Id         uint      `gorm:"primaryKey"`
	UserId     uint      `gorm:"not null;index;uniqueIndex:idx_saved_user_medicine"`
	MedicineId uint      `gorm:"not null;index;uniqueIndex:idx_saved_user_medicine"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	Medicine Medicine `gorm:"foreignKey:MedicineId"`
}

func (SavedMedicine) TableName() string {
	return "saved_medicines"
}
