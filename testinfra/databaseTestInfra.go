package testinfra

import (
	"log"
	"os"
	"path/filepath"
	"shopfront/persistence"
	"strings"

	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"github.com/google/uuid"
)

type TestDatabase struct {
	TestDatabaseName string
	DS               *persistence.DataSourceManager

	sqliteFile string
}

// StartTestDatabase prepares a throwaway database for a test. With
// TEST_MYSQL_SERVICE set (e.g. root:root@(127.0.0.1:3306)) a uniquely named
// mysql database is created; otherwise a temp-file sqlite database is used
// so tests run standalone.
func StartTestDatabase(baseName string) *TestDatabase {
	databaseName := baseName + "_test_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	mysqlSvc := os.Getenv("TEST_MYSQL_SERVICE")
	if mysqlSvc != "" {
		dbConfig := &persistence.DatabaseConfig{
			DriverType: "mysql",
			DriverArgs: mysqlSvc + "/" + databaseName + "?charset=utf8mb4&parseTime=True&loc=Local&timeout=5s",
		}
		if err := persistence.PrepareMysqlDatabase(dbConfig.DriverArgs); err != nil {
			log.Fatalf("failed to prepare database %v\n", err)
		}

		ds := &persistence.DataSourceManager{DatabaseConfig: dbConfig}
		if err := ds.Start(); err != nil {
			ds.Stop()
			log.Fatalf("database connection failed %v\n", err)
		}
		return &TestDatabase{TestDatabaseName: databaseName, DS: ds}
	}

	sqliteFile := filepath.Join(os.TempDir(), databaseName+".db")
	ds := &persistence.DataSourceManager{DatabaseConfig: &persistence.DatabaseConfig{
		DriverType: "sqlite3", DriverArgs: sqliteFile,
	}}
	if err := ds.Start(); err != nil {
		ds.Stop()
		log.Fatalf("database connection failed %v\n", err)
	}
	return &TestDatabase{TestDatabaseName: databaseName, DS: ds, sqliteFile: sqliteFile}
}

func StopTestDatabase(testDatabase *TestDatabase) {
	if testDatabase == nil || testDatabase.DS == nil {
		return
	}

	if testDatabase.sqliteFile != "" {
		testDatabase.DS.Stop()
		if err := os.Remove(testDatabase.sqliteFile); err != nil {
			log.Println("failed to remove test database file: " + testDatabase.sqliteFile)
		}
		return
	}

	if db := testDatabase.DS.GormDB(nil); db != nil {
		if err := db.Exec("DROP DATABASE " + testDatabase.TestDatabaseName).Error; err != nil {
			log.Println("failed to drop test database: " + testDatabase.TestDatabaseName)
		} else {
			log.Println("test database " + testDatabase.TestDatabaseName + " dropped")
		}
	}
	testDatabase.DS.Stop()
}
