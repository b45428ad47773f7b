package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/NathanNorman/wegmans-shopping/catalog"
	"github.com/NathanNorman/wegmans-shopping/models"
)

// newTestDB opens a fresh in-memory database per test. A single connection
// keeps the :memory: database alive across the pool.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.CartLine{},
		&models.SavedList{},
		&models.SavedListItem{},
		&models.FrequentItem{},
		&models.SearchCacheEntry{},
		&models.Recipe{},
		&models.RecipeItem{},
	))
	return db
}

func bananas() catalog.Product {
	return catalog.Product{Name: "Bananas", Price: 0.59, Aisle: "Produce", SellByUnit: "Each"}
}

func chicken() catalog.Product {
	return catalog.Product{Name: "Chicken Breast", Price: 4.99, Aisle: "Meat", SellByUnit: "lb", IsWeight: true}
}

func bread() catalog.Product {
	return catalog.Product{Name: "Bread", Price: 3.29, Aisle: "Bakery", SellByUnit: "Each"}
}

func milk() catalog.Product {
	return catalog.Product{Name: "Milk", Price: 2.49, Aisle: "Dairy", SellByUnit: "Each"}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
