package projects

import (
	"log"

	"github.com/ryuzenazari/hmptiunesa/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "projects"); err != nil {
		log.Fatal("Failed to ensure schema projects: ", err)
	}

	if err := db.DB.AutoMigrate(&Project{}); err != nil {
		log.Fatal("Failed to auto-migrate project tables: ", err)
	}
}
