package entity

import "time"

type User struct {
	Id             uint
	Username       string
	HashedPassword string
	CreatedAt      time.Time
}

type SavedMedicine struct {
	Id         uint
	UserId     uint
	MedicineId uint
	CreatedAt  time.Time
	Medicine   *Medicine
}
