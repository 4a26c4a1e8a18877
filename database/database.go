package database

import (
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/osvyd/train-station-api/config"
)

// MySQL connection with up to maxRetryCount attempts.
func ConnectDB(cfg config.Config, maxRetryCount int) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s)/%s?parseTime=true",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBName,
	)

	for r := 1; r <= maxRetryCount; r++ {
		db, err := sqlx.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("dbConnection: %w", err)
		}

		err = db.Ping()
		if err == nil {
			log.Println("DB connection successful")
			return db, nil
		}

		// Retry after 5 seconds while the DB container comes up
		log.Println("DB Connection Error: " + err.Error())
		time.Sleep(5 * time.Second)
	}
	return nil, fmt.Errorf("DB connection error occured %d times", maxRetryCount)
}
