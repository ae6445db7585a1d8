package entity

type Kendra struct {
	Id   uint
	Name string
	Lat  float64
	Lng  float64
}
