package database

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/sustentus/vendor-portal/app/models"
	"github.com/sustentus/vendor-portal/internal/pkg/env"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

// SetupDatabase opens the MySQL connection pool and migrates the schema.
// The returned handle is created once at process start and passed down
// explicitly; nothing re-initializes it mid-request.
func SetupDatabase() (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
	)

	var db *gorm.DB
	var err error
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,   // data source name
			DefaultStringSize:         256,   // default size for string fields
			DisableDatetimePrecision:  true,  // disable datetime precision, which not supported before MySQL 5.6
			DontSupportRenameIndex:    true,  // drop & create when rename index, rename index not supported before MySQL 5.7, MariaDB
			DontSupportRenameColumn:   true,  // `change` when rename column, rename column not supported before MySQL 8, MariaDB
			SkipInitializeWithVersion: false, // auto configure based on currently MySQL version
		}), &gorm.Config{})
		if err == nil {
			if err := configurePool(db); err != nil {
				return nil, err
			}
			if err := db.AutoMigrate(
				&models.Vendor{},
				&models.VendorPlan{},
				&models.VendorSetting{},
				&models.VendorAccessLog{},
			); err != nil {
				return nil, fmt.Errorf("auto migration failed: %w", err)
			}
			return db, nil
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("database connection failed after %d attempts: %w", maxRetries, err)
}

// configurePool applies bounded pool sizing and acquire timeouts so that a
// stalled database surfaces as a timeout instead of unbounded blocking.
func configurePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	poolSize := 10
	if v, err := strconv.Atoi(env.GetEnv("DB_POOL_SIZE", "10")); err == nil && v > 0 {
		poolSize = v
	}

	sqlDB.SetMaxOpenConns(poolSize)
	sqlDB.SetMaxIdleConns(poolSize / 2)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	return nil
}
