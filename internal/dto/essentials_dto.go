package dto

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type CategoryMedicinesResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
}
