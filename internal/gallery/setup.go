package gallery

import (
	"log"

	"github.com/ryuzenazari/hmptiunesa/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "gallery"); err != nil {
		log.Fatal("Failed to ensure schema gallery: ", err)
	}

	if err := db.DB.AutoMigrate(&Item{}); err != nil {
		log.Fatal("Failed to auto-migrate gallery tables: ", err)
	}
}
