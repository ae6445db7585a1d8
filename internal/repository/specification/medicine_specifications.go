package specification

import (
	"strings"

	"gorm.io/gorm"
)

// LOWER(...) LIKE keeps matching case-insensitive on both sqlite and postgres.

func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

type NameContains struct {
	Term string
}

func (s NameContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(name) LIKE ?", likePattern(s.Term))
}

type NameOrGenericContains struct {
	Term string
}

func (s NameOrGenericContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := likePattern(s.Term)
	return db.Where("LOWER(name) LIKE ? OR LOWER(generic) LIKE ?", pattern, pattern)
}

type ByGeneric struct {
	Generic string
}

func (s ByGeneric) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("generic = ?", s.Generic)
}

type NameIn struct {
	Names []string
}

func (s NameIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name IN ?", s.Names)
}

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

type ByTitle struct {
	Title string
}

func (s ByTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}
