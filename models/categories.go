package models

// Категории транзакций и бюджетов
var Categories = []string{
	"General",
	"Bills",
	"Groceries",
	"Dining Out",
	"Transportation",
	"Entertainment",
	"Personal Care",
	"Education",
	"Lifestyle",
	"Shopping",
}

func IsValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
