package database

import (
	"fmt"

	"medinfo-be/internal/model"

	"gorm.io/gorm"
)

var seedMedicines = []model.Medicine{
	{Name: "Paracetamol", Generic: "Acetaminophen", Company: "BrandA", Price: 10.0},
	{Name: "Ibuprofen", Generic: "Ibuprofen", Company: "BrandB", Price: 15.0},
	{Name: "Cetirizine", Generic: "Cetirizine", Company: "BrandC", Price: 8.0},
}

var seedKendras = []model.Kendra{
	{Name: "Kendra 1", Lat: 28.6139, Lng: 77.2090},
	{Name: "Kendra 2", Lat: 28.7041, Lng: 77.1025},
}

var seedPosts = []model.BlogPost{
	{Title: "Why Generic Medicines Matter", Content: "Generics are as effective as branded medicines but cost less."},
	{Title: "How to Find Affordable Medicines", Content: "Tips and resources for finding affordable medicines in India."},
}

// Seed inserts the demo catalog. Rows are matched by name or title, so
// running it twice leaves a single copy of each.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, m := range seedMedicines {
			m := m
			if err := tx.Where(model.Medicine{Name: m.Name, Company: m.Company}).FirstOrCreate(&m).Error; err != nil {
				return fmt.Errorf("seed medicine %s: %w", m.Name, err)
			}
		}
		for _, k := range seedKendras {
			k := k
			if err := tx.Where(model.Kendra{Name: k.Name}).FirstOrCreate(&k).Error; err != nil {
				return fmt.Errorf("seed kendra %s: %w", k.Name, err)
			}
		}
		for _, p := range seedPosts {
			p := p
			if err := tx.Where(model.BlogPost{Title: p.Title}).FirstOrCreate(&p).Error; err != nil {
				return fmt.Errorf("seed post %s: %w", p.Title, err)
			}
		}
		return nil
	})
}
