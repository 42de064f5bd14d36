package catalog

import (
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"recipe-app-api/app/server/inits"
	"recipe-app-api/app/server/models"
	"testing"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := inits.OpenDB(sqlite.Open("file:" + uuid.NewString() + "?mode=memory&cache=shared"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

func sampleRecipe(title string) *models.Recipe {
	return &models.Recipe{
		Title:       title,
		TimeMinutes: 10,
		Price:       decimal.RequireFromString("5.00"),
	}
}
