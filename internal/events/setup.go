package events

import (
	"log"

	"github.com/ryuzenazari/hmptiunesa/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "events"); err != nil {
		log.Fatal("Failed to ensure schema events: ", err)
	}

	if err := db.DB.AutoMigrate(&Event{}); err != nil {
		log.Fatal("Failed to auto-migrate event tables: ", err)
	}
}
