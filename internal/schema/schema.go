// Package schema lists every persisted model in dependency order.
package schema

import (
	authdomain "findit-backend/internal/auth/domain"
	commentdomain "findit-backend/internal/comment/domain"
	groupdomain "findit-backend/internal/group/domain"
	notificationdomain "findit-backend/internal/notification/domain"
	postdomain "findit-backend/internal/post/domain"

	"gorm.io/gorm"
)

func Models() []interface{} {
	return []interface{}{
		&authdomain.User{},
		&groupdomain.Group{},
		&groupdomain.GroupMember{},
		&postdomain.Post{},
		&commentdomain.Comment{},
		&notificationdomain.FCMToken{},
	}
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
