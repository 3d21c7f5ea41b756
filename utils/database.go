// Package utils holds shared DB plumbing. It should not contain business
// logic; handlers own that.
package utils

import (
	"fmt"
	"log"
	"os"
	"strings"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/somosmas/ong-api/model"
)

const (
	TestDBPrefix         = "testonlydb_"
	TestDBNameCharLength = 8
)

func isTempDB(dbName string) bool {
	return strings.HasPrefix(dbName, TestDBPrefix)
}

func randomTestDBName() string {
	return TestDBPrefix + RandomAlphabetString(TestDBNameCharLength)
}

// GetDBConnection connects to the database specified by env.
func GetDBConnection() (*gorm.DB, error) {
	return GetCustomizedConnection(os.Getenv("DB_NAME"))
}

// GetDefaultDBConnection connects to the maintenance database, used to
// create and drop temp databases.
func GetDefaultDBConnection() (*gorm.DB, error) {
	return GetCustomizedConnection(os.Getenv("DEFAULT_DB_NAME"))
}

// GetCustomizedConnection connects to any database by name.
func GetCustomizedConnection(dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASS"), dbName, os.Getenv("DB_PORT"))
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// AutoMigrate creates or updates every resource table plus the join
// tables behind roles and permissions.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.Permission{},
		&model.AccessToken{},
		&model.Category{},
		&model.Activity{},
		&model.News{},
		&model.Comment{},
		&model.Contact{},
		&model.Member{},
		&model.Project{},
		&model.Slide{},
		&model.SocialMediaItem{},
		&model.Testimonial{},
		&model.Organization{},
	)
}

// CreateTempDB creates a uniquely named database for one integration
// test, migrated and seeded, and registers a cleanup that drops it.
// Requires a reachable postgres; callers should skip when DB_HOST is
// unset so the suite stays runnable without one.
func CreateTempDB(t *testing.T) (*gorm.DB, string) {
	t.Helper()
	db, err := GetDefaultDBConnection()
	if err != nil {
		log.Fatalln("cannot connect to DB")
	}
	dbName := randomTestDBName()
	if err := db.Exec("CREATE DATABASE " + dbName).Error; err != nil {
		log.Fatalln("fail to create temp DB with name: ", dbName)
	}
	newDB, err := GetCustomizedConnection(dbName)
	if err != nil {
		log.Fatalln("fail to connect to newly created DB: ", dbName)
	}
	if err := AutoMigrate(newDB); err != nil {
		log.Fatalln("fail to migrate temp DB: ", err)
	}
	if err := Seed(newDB); err != nil {
		log.Fatalln("fail to seed temp DB: ", err)
	}
	t.Cleanup(func() {
		dropTempDB(newDB, dbName)

		// Proactively close connections instead of deferring to GC,
		// otherwise a long test run can exceed the connection limit.
		conn, _ := db.DB()
		conn.Close()
	})

	return newDB, dbName
}

func dropTempDB(curDB *gorm.DB, dbName string) {
	if !isTempDB(dbName) {
		log.Fatalln("cannot delete a non-testing DB")
	}

	// The connection into the doomed database has to go first, postgres
	// refuses to drop a database with live sessions.
	sqlDB, err := curDB.DB()
	if err != nil {
		log.Fatalln("cannot get the current SQL DB")
	}
	if err := sqlDB.Close(); err != nil {
		log.Println("cannot close DB", err)
	}

	db, err := GetDefaultDBConnection()
	if err != nil {
		log.Fatalln("cannot connect to DB")
	}
	db.Exec("DROP DATABASE IF EXISTS " + dbName)
	conn, _ := db.DB()
	conn.Close()
}
