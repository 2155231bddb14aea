package news

import (
	"log"

	"github.com/ryuzenazari/hmptiunesa/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "news"); err != nil {
		log.Fatal("Failed to ensure schema news: ", err)
	}

	if err := db.DB.AutoMigrate(&Article{}); err != nil {
		log.Fatal("Failed to auto-migrate news tables: ", err)
	}
}
