package notification

import (
	"errors"
	"shopfront/bizerror"
	"shopfront/domain"
	"shopfront/idgen"
	"shopfront/persistence"
	"shopfront/session"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

var (
	notificationIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateNotificationFunc     = CreateNotification
	QueryNotificationsFunc     = QueryNotifications
	UpdateNotificationReadFunc = UpdateNotificationRead
)

// CreateNotification appends a notification row within the caller's
// transaction, so a failed transition never leaves one behind.
func CreateNotification(n *domain.Notification, tx *gorm.DB) error {
	if n.ID == 0 {
		n.ID = idgen.NextID(notificationIdWorker)
	}
	if n.CreateTime.IsZero() {
		n.CreateTime = types.CurrentTimestamp()
	}
	return tx.Create(n).Error
}

// QueryNotifications lists notifications of the calling user, newest first.
func QueryNotifications(q domain.NotificationQuery, sec *session.Session) ([]domain.Notification, error) {
	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	query := db.Where(&domain.Notification{UserID: sec.Identity.ID})
	if q.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	records := []domain.Notification{}
	if err := query.Order("create_time DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func UpdateNotificationRead(id types.ID, isRead bool, sec *session.Session) error {
	return persistence.ActiveDataSourceManager.GormDB(sec.Context).Transaction(func(tx *gorm.DB) error {
		n := domain.Notification{}
		if err := tx.Where("id = ?", id).First(&n).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return bizerror.ErrNotFound
			}
			return err
		}
		if n.UserID != sec.Identity.ID {
			return bizerror.ErrForbidden
		}
		return tx.Model(&domain.Notification{}).Where("id = ?", id).Update("is_read", isRead).Error
	})
}
