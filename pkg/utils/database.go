package utils

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// DatabaseURL builds the MySQL DSN from configuration
func DatabaseURL(cfg *Config) string {
	dbConfig := mysql.Config{
		User:      cfg.Get("MYSQL_USER"),
		Passwd:    cfg.Get("MYSQL_PASSWORD"),
		Net:       "tcp",
		Addr:      fmt.Sprintf("%s:%s", cfg.GetWithDefault("MYSQL_HOST", "localhost"), cfg.GetWithDefault("MYSQL_PORT", "3306")),
		DBName:    cfg.Get("MYSQL_DATABASE"),
		ParseTime: true,
	}

	return dbConfig.FormatDSN()
}
