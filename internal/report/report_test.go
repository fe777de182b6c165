package report

import (
	"time"

	"fintrack/internal/models"
)

func day(s string) time.Time {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

var (
	salary = &models.Category{Base: models.Base{ID: 1}, Name: "Salary"}
	food   = &models.Category{Base: models.Base{ID: 2}, Name: "Food"}
	rent   = &models.Category{Base: models.Base{ID: 3}, Name: "Rent"}
)

func tx(id uint, date string, amount float64, cat *models.Category, desc string) models.Transaction {
	t := models.Transaction{
		Base:        models.Base{ID: id},
		Date:        day(date),
		Description: desc,
		Amount:      amount,
	}
	if cat != nil {
		t.CategoryID = cat.ID
		t.Category = cat
	}
	return t
}

// sampleTransactions is the three-row example used throughout the report tests.
func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		tx(1, "2025-01-05", 1000, salary, "January pay"),
		tx(2, "2025-01-20", -200, food, "Groceries"),
		tx(3, "2025-02-01", -50, rent, "Deposit top-up"),
	}
}
