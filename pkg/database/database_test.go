package database

import (
	"bytes"
	stdlog "log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type note struct {
	ID   string `gorm:"primaryKey"`
	Body string
}

func TestGormLogger_SkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig(stdlog.New(&buf, "", 0)))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&note{}))

	err = db.Where("id = ?", "missing").First(&note{}).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	err = db.Table("no_such_table").Where("id = ?", "x").First(&note{}).Error
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "no_such_table")
}

func TestNewSQLiteConnection_TranslatesDuplicateKey(t *testing.T) {
	db, err := NewSQLiteConnection(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&note{}))

	require.NoError(t, db.Create(&note{ID: "a", Body: "first"}).Error)
	err = db.Create(&note{ID: "a", Body: "again"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
