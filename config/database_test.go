package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestGetDB(t *testing.T) {
	// Initially DB should be nil
	DB = nil
	db := GetDB()
	assert.Nil(t, db, "GetDB should return nil when DB is not initialized")
}

func TestSetDB(t *testing.T) {
	defer SetDB(nil)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err, "Should open in-memory test database")

	SetDB(db)
	assert.Equal(t, db, GetDB(), "GetDB should return the instance passed to SetDB")
}

func TestConnectDatabaseWithoutConfig(t *testing.T) {
	originalConfig := GetConfig()
	defer SetConfig(originalConfig)

	SetConfig(nil)
	err := ConnectDatabase()
	assert.Error(t, err, "Should fail when configuration is not loaded")
}

func TestConnectDatabaseWithInvalidConfig(t *testing.T) {
	originalConfig := GetConfig()
	defer func() {
		SetConfig(originalConfig)
		DB = nil
	}()

	// Nothing listens on port 1, so the connection attempt fails fast
	SetConfig(&Config{
		DBHost:     "localhost",
		DBPort:     "1",
		DBName:     "nonexistent",
		DBUser:     "invalid",
		DBPassword: "invalid",
		DBSSLMode:  "disable",
	})

	err := ConnectDatabase()
	assert.Error(t, err, "Should fail to connect with invalid database settings")
}
