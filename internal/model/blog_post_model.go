package model

import "time"

type BlogPost struct {
	Id        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
