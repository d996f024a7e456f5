package services

import (
	"math/rand"
	"time"

	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// TestDataGeneratorInterface produces realistic sample data for
// development environments
type TestDataGeneratorInterface interface {
	GenerateCategories() []*models.Category
	GenerateTransactions(start, end time.Time, categoryIDs []int64, count int) []*models.Transaction
}

// seedCategory pairs a category name with a plausible monthly budget.
// A zero budget seeds the category without one.
type seedCategory struct {
	name   string
	budget float64
}

type testDataGenerator struct {
	categoryPool []seedCategory
	vendorPool   []string
	notePool     []string
	rng          *rand.Rand
}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator() TestDataGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &testDataGenerator{
		categoryPool: initializeCategoryPool(),
		vendorPool:   initializeVendorPool(),
		notePool:     initializeNotePool(),
		rng:          rand.New(source),
	}
}

func initializeCategoryPool() []seedCategory {
	return []seedCategory{
		{"Groceries", 600},
		{"Dining Out", 250},
		{"Transportation", 150},
		{"Utilities", 300},
		{"Entertainment", 120},
		{"Travel", 400},
		{"Health", 0},
		{"Miscellaneous", 0},
	}
}

func initializeVendorPool() []string {
	return []string{
		"Kroger",
		"Whole Foods",
		"Trader Joe's",
		"Aldi",
		"Starbucks",
		"Chipotle",
		"Panera Bread",
		"Shell",
		"Chevron",
		"Uber",
		"Metro Transit",
		"City Power & Light",
		"Water Works",
		"Netflix",
		"Spotify",
		"AMC Theatres",
		"Delta Air Lines",
		"Hilton",
		"CVS Pharmacy",
		"Amazon",
	}
}

func initializeNotePool() []string {
	return []string{
		"weekly run",
		"lunch with team",
		"refill",
		"monthly bill",
		"subscription",
		"birthday gift",
		"trip booking",
		"stocking up",
	}
}

// GenerateCategories returns the full seed category set, budgets attached
// where the pool defines one
func (g *testDataGenerator) GenerateCategories() []*models.Category {
	categories := make([]*models.Category, 0, len(g.categoryPool))
	for _, seed := range g.categoryPool {
		category := &models.Category{
			Name: models.NormalizeCategoryName(seed.name),
		}
		if seed.budget > 0 {
			category.Budget = decimal.NewNullDecimal(decimal.NewFromFloat(seed.budget))
		}
		categories = append(categories, category)
	}
	return categories
}

// GenerateTransactions produces count random transactions dated within
// [start, end]. Roughly one in six is left uncategorized so reports always
// have an uncategorized row to show.
func (g *testDataGenerator) GenerateTransactions(start, end time.Time, categoryIDs []int64, count int) []*models.Transaction {
	transactions := make([]*models.Transaction, 0, count)
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}

	for i := 0; i < count; i++ {
		transDate := start.AddDate(0, 0, g.rng.Intn(days))

		cents := 100 + g.rng.Intn(20000)
		amount := decimal.New(int64(cents), -2)

		transaction := &models.Transaction{
			TransDate: time.Date(transDate.Year(), transDate.Month(), transDate.Day(), 0, 0, 0, 0, time.UTC),
			Amount:    amount,
			Vendor:    g.vendorPool[g.rng.Intn(len(g.vendorPool))],
		}

		if g.rng.Intn(3) != 0 {
			note := g.notePool[g.rng.Intn(len(g.notePool))]
			transaction.Note = &note
		}

		if len(categoryIDs) > 0 && g.rng.Intn(6) != 0 {
			categoryID := categoryIDs[g.rng.Intn(len(categoryIDs))]
			transaction.CategoryID = &categoryID
		}

		transactions = append(transactions, transaction)
	}

	return transactions
}
