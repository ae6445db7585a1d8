package entity

type Medicine struct {
	Id      uint
	Name    string
	Generic string
	Company string
	Price   float64
}
