package lecturers

import (
	"log"

	"github.com/ryuzenazari/hmptiunesa/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "lecturers"); err != nil {
		log.Fatal("Failed to ensure schema lecturers: ", err)
	}

	if err := db.DB.AutoMigrate(&Lecturer{}, &ResearchItem{}); err != nil {
		log.Fatal("Failed to auto-migrate lecturer tables: ", err)
	}
}
