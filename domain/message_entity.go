package domain

import (
	"github.com/fundwit/go-commons/types"
)

type ContactMessage struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	SenderName  string   `json:"senderName"`
	SenderEmail string   `json:"senderEmail"`
	UserID      types.ID `json:"userId"` // zero when the sender has no account

	Subject string        `json:"subject"`
	Body    string        `json:"body" sql:"type:TEXT"`
	Status  MessageStatus `json:"status"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
	UpdateTime types.Timestamp `json:"updateTime" sql:"type:DATETIME(6)"`
}

// MessageReply is owned by ContactMessage and only created through the reply
// operation, which also forces the parent status to replied.
type MessageReply struct {
	ID        types.ID `json:"id" gorm:"primary_key"`
	MessageID types.ID `json:"messageId"`
	AdminID   types.ID `json:"adminId"`

	Body string `json:"body" sql:"type:TEXT"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

type MessageStatusTransition struct {
	MessageID types.ID `json:"message_id"`
	OldStatus string   `json:"old_status"`
	NewStatus string   `json:"new_status"`
}

type MessageDetail struct {
	ContactMessage

	Replies []MessageReply `json:"replies" gorm:"-"`
}

type MessageQuery struct {
	Status MessageStatus `json:"status" form:"status"`
}
