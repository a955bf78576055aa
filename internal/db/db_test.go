package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-on-wheel/internal/config"
	"github.com/BruksfildServices01/service-on-wheel/internal/db"
	"github.com/BruksfildServices01/service-on-wheel/internal/db/dbtest"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

func TestScope_LazyAcquireAndRelease(t *testing.T) {
	gdb := dbtest.Open(t)
	scope := db.NewGateway(gdb).Begin(context.Background())

	assert.False(t, scope.Acquired())

	handle, err := scope.DB()
	require.NoError(t, err)
	assert.True(t, scope.Acquired())

	again, err := scope.DB()
	require.NoError(t, err)
	assert.Same(t, handle, again)

	var count int64
	require.NoError(t, handle.Model(&models.Service{}).Count(&count).Error)
	assert.Zero(t, count)

	require.NoError(t, scope.Release())
	assert.False(t, scope.Acquired())

	_, err = scope.DB()
	assert.ErrorIs(t, err, db.ErrScopeReleased)
}

func TestScope_ReleaseWithoutAcquireIsNoop(t *testing.T) {
	gdb := dbtest.Open(t)
	scope := db.NewGateway(gdb).Begin(context.Background())

	assert.NoError(t, scope.Release())
	assert.NoError(t, scope.Release())
}

func TestScope_TransactionRollsBackOnPinnedConnection(t *testing.T) {
	gdb := dbtest.Open(t)
	scope := db.NewGateway(gdb).Begin(context.Background())
	defer scope.Release()

	handle, err := scope.DB()
	require.NoError(t, err)

	boom := errors.New("boom")
	err = handle.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Service{Name: "Temp"}).Error; err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, handle.Model(&models.Service{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestScope_ChainedQueriesDoNotLeakConditions(t *testing.T) {
	gdb := dbtest.Open(t)
	require.NoError(t, gdb.Create(&[]models.Service{{Name: "A"}, {Name: "B"}}).Error)

	scope := db.NewGateway(gdb).Begin(context.Background())
	defer scope.Release()
	handle, err := scope.DB()
	require.NoError(t, err)

	var a models.Service
	require.NoError(t, handle.Where("name = ?", "A").First(&a).Error)

	var all []models.Service
	require.NoError(t, handle.Find(&all).Error)
	assert.Len(t, all, 2)
}

func TestStatic(t *testing.T) {
	gdb := dbtest.Open(t)

	got, err := db.Static(gdb).DB()
	require.NoError(t, err)
	assert.Same(t, gdb, got)
}

func TestIsUniqueViolation(t *testing.T) {
	gdb := dbtest.Open(t)

	require.NoError(t, gdb.Create(&models.User{Email: "a@x.com", Password: "h"}).Error)
	err := gdb.Create(&models.User{Email: "a@x.com", Password: "h"}).Error

	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err))
	assert.False(t, db.IsUniqueViolation(nil))
	assert.False(t, db.IsUniqueViolation(errors.New("other")))
}

func TestIsNotFound(t *testing.T) {
	gdb := dbtest.Open(t)

	var s models.Service
	err := gdb.First(&s, 99999).Error

	assert.True(t, db.IsNotFound(err))
}

func TestSeed_OnlyWhenEmpty(t *testing.T) {
	gdb := dbtest.Open(t)

	n, err := db.Seed(gdb)
	require.NoError(t, err)
	assert.Positive(t, n)

	n, err = db.Seed(gdb)
	require.NoError(t, err)
	assert.Zero(t, n)

	var services []models.Service
	require.NoError(t, gdb.Find(&services).Error)
	assert.NotEmpty(t, services)
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := db.NewDB(&config.Config{DBDriver: "oracle", DBUrl: "x"})

	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestNewDB_Sqlite(t *testing.T) {
	gdb, err := db.NewDB(&config.Config{DBDriver: "sqlite", DBUrl: t.TempDir() + "/app.db"})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Close())
}
