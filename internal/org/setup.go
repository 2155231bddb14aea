package org

import (
	"log"

	"github.com/ryuzenazari/hmptiunesa/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "org"); err != nil {
		log.Fatal("Failed to ensure schema org: ", err)
	}

	if err := db.DB.AutoMigrate(&Profile{}, &Department{}); err != nil {
		log.Fatal("Failed to auto-migrate org tables: ", err)
	}
}
