package message

import (
	"errors"
	"shopfront/account"
	"shopfront/bizerror"
	"shopfront/domain"
	"shopfront/domain/notification"
	"shopfront/event"
	"shopfront/idgen"
	"shopfront/persistence"
	"shopfront/session"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
	"github.com/sony/sonyflake"
)

const MinReplyLength = 10

var (
	replyIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	TransitionMessageStatusFunc = TransitionMessageStatus
	ReplyToMessageFunc          = ReplyToMessage
	QueryMessagesFunc           = QueryMessages
	DetailMessageFunc           = DetailMessage
)

type MessageReplyCreation struct {
	ReplyText string `json:"reply_text" binding:"required"`
}

// TransitionMessageStatus is a plain status change without side effects.
// Any valid status may be set from any other, including into and out of
// closed; only the reply operation treats closed as terminal.
func TransitionMessageStatus(id types.ID, newStatus domain.MessageStatus, sec *session.Session) (*domain.MessageStatusTransition, error) {
	if !newStatus.IsValid() {
		return nil, bizerror.ErrInvalidStatus
	}
	if !sec.Perms.HasRole(account.SystemAdminPermission.ID) {
		return nil, bizerror.ErrForbidden
	}

	var result *domain.MessageStatusTransition
	var ev *event.EventRecord
	txErr := persistence.ActiveDataSourceManager.GormDB(sec.Context).Transaction(func(tx *gorm.DB) error {
		msg, err := findMessage(tx, id)
		if err != nil {
			return err
		}
		result = &domain.MessageStatusTransition{MessageID: msg.ID,
			OldStatus: string(msg.Status), NewStatus: string(newStatus)}
		if msg.Status == newStatus {
			return nil
		}

		now := types.CurrentTimestamp()
		if err := updateMessageStatus(tx, msg.ID, newStatus, now); err != nil {
			return err
		}

		ev, err = event.CreateEvent("MESSAGE", msg.ID, msg.Subject, event.EventCategoryPropertyUpdated,
			[]event.UpdatedProperty{{PropertyName: "Status", PropertyDesc: "Status",
				OldValue: string(msg.Status), OldValueDesc: string(msg.Status),
				NewValue: string(newStatus), NewValueDesc: string(newStatus)}},
			&sec.Identity, now, tx)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	if ev != nil && event.InvokeHandlersFunc != nil {
		event.InvokeHandlersFunc(ev)
	}
	return result, nil
}

// ReplyToMessage inserts a reply, forces the parent status to replied and,
// when the sender has a linked account, notifies them. The three writes
// commit or roll back together.
func ReplyToMessage(id types.ID, creation MessageReplyCreation, sec *session.Session) (*domain.MessageReply, error) {
	body := strings.TrimSpace(creation.ReplyText)
	if utf8.RuneCountInString(body) < MinReplyLength {
		return nil, bizerror.ErrInvalidReplyText
	}
	if !sec.Perms.HasRole(account.SystemAdminPermission.ID) {
		return nil, bizerror.ErrForbidden
	}

	var reply *domain.MessageReply
	var ev *event.EventRecord
	txErr := persistence.ActiveDataSourceManager.GormDB(sec.Context).Transaction(func(tx *gorm.DB) error {
		msg, err := findMessage(tx, id)
		if err != nil {
			return err
		}
		if msg.Status == domain.MessageStatusClosed {
			return bizerror.ErrMessageClosed
		}

		now := types.CurrentTimestamp()
		r := domain.MessageReply{ID: idgen.NextID(replyIdWorker), MessageID: msg.ID,
			AdminID: sec.Identity.ID, Body: body, CreateTime: now}
		if err := tx.Create(&r).Error; err != nil {
			return err
		}

		if err := updateMessageStatus(tx, msg.ID, domain.MessageStatusReplied, now); err != nil {
			return err
		}

		if msg.UserID != 0 {
			title, notifyBody := notification.ComposeMessageReplyNotification(msg.Subject)
			if err := notification.CreateNotificationFunc(&domain.Notification{
				UserID: msg.UserID, Type: domain.NotificationTypeMessageReply,
				Title: title, Body: notifyBody, RelatedID: msg.ID,
			}, tx); err != nil {
				return err
			}
		}

		ev, err = event.CreateEvent("MESSAGE", msg.ID, msg.Subject, event.EventCategoryExtensionUpdated,
			[]event.UpdatedProperty{{PropertyName: "Reply", PropertyDesc: "Reply",
				NewValue: body, NewValueDesc: body}},
			&sec.Identity, now, tx)
		if err != nil {
			return err
		}

		reply = &r
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if ev != nil && event.InvokeHandlersFunc != nil {
		event.InvokeHandlersFunc(ev)
	}
	return reply, nil
}

func QueryMessages(q domain.MessageQuery, sec *session.Session) ([]domain.ContactMessage, error) {
	if !sec.Perms.HasRole(account.SystemAdminPermission.ID) {
		return nil, bizerror.ErrForbidden
	}

	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	query := db.Model(&domain.ContactMessage{})
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}

	messages := []domain.ContactMessage{}
	if err := query.Order("create_time DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func DetailMessage(id types.ID, sec *session.Session) (*domain.MessageDetail, error) {
	if !sec.Perms.HasRole(account.SystemAdminPermission.ID) {
		return nil, bizerror.ErrForbidden
	}

	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	msg, err := findMessage(db, id)
	if err != nil {
		return nil, err
	}

	detail := domain.MessageDetail{ContactMessage: *msg, Replies: []domain.MessageReply{}}
	if err := db.Where(&domain.MessageReply{MessageID: msg.ID}).
		Order("create_time ASC").Find(&detail.Replies).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func findMessage(db *gorm.DB, id types.ID) (*domain.ContactMessage, error) {
	msg := domain.ContactMessage{}
	if err := db.Where("id = ?", id).First(&msg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bizerror.ErrNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func updateMessageStatus(tx *gorm.DB, id types.ID, status domain.MessageStatus, now types.Timestamp) error {
	db := tx.Model(&domain.ContactMessage{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "update_time": now})
	if db.Error != nil {
		return db.Error
	}
	if db.RowsAffected != 1 {
		return errors.New("expected affected row is 1, but actual is " + strconv.FormatInt(db.RowsAffected, 10))
	}
	return nil
}
