package seed

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sipline/drink_shop/internal/models"
)

func TestRun_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Drink{}))

	n, err := Run(db)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	var count int64
	require.NoError(t, db.Model(&models.Drink{}).Count(&count).Error)
	assert.EqualValues(t, 4, count)

	// Second run must not duplicate the catalog.
	n, err = Run(db)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, db.Model(&models.Drink{}).Count(&count).Error)
	assert.EqualValues(t, 4, count)
}
