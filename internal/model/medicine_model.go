package model

type Medicine struct {
	Id      uint   `gorm:"primaryKey"`
	Name    string `gorm:"type:varchar(255);index;not null"`
	Generic string `gorm:"type:varchar(255);index;not null"`
	Company string `gorm:"type:varchar(255)"`
	Price   float64
}

func (Medicine) TableName() string {
	return "medicines"
}
