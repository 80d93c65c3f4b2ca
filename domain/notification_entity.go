package domain

import (
	"github.com/fundwit/go-commons/types"
)

const (
	NotificationTypeOrderStatus   = "ORDER_STATUS"
	NotificationTypePaymentStatus = "PAYMENT_STATUS"
	NotificationTypeMessageReply  = "MESSAGE_REPLY"
)

// Notification rows are appended as a side effect of order status and
// message reply transitions, in the same transaction as the triggering
// update. The schema always carries RelatedID; there is no runtime column
// detection.
type Notification struct {
	ID     types.ID `json:"id" gorm:"primary_key"`
	UserID types.ID `json:"userId"`

	Type  string `json:"type"`
	Title string `json:"title"`
	Body  string `json:"body" sql:"type:TEXT"`

	RelatedID types.ID `json:"relatedId"`
	IsRead    bool     `json:"isRead"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

type NotificationQuery struct {
	UnreadOnly bool `json:"unreadOnly" form:"unreadOnly"`
}
