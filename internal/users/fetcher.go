package users

import (
	"github.com/ryuzenazari/hmptiunesa/internal/authz"
	"github.com/ryuzenazari/hmptiunesa/internal/db"
)

// UserInfo implements middleware.UserFetcher against the database.
type UserInfo struct{}

func (UserInfo) FindUserByID(id string) (authz.Principal, error) {
	var user User

	err := db.DB.First(&user, "id = ?", id).Error
	if err != nil {
		return authz.Principal{}, err
	}

	return user.Principal(), nil
}
