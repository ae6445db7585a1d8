package entity

import "time"

type BlogPost struct {
	Id        uint
	Title     string
	Content   string
	CreatedAt time.Time
}
