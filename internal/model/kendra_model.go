package model

type Kendra struct {
	Id   uint    `gorm:"primaryKey"`
	Name string  `gorm:"type:varchar(255);not null"`
	Lat  float64 `gorm:"not null"`
	Lng  float64 `gorm:"not null"`
}

func (Kendra) TableName() string {
	return "kendras"
}
