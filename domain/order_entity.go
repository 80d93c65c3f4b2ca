package domain

import (
	"github.com/fundwit/go-commons/types"
)

type Order struct {
	ID          types.ID `json:"id" gorm:"primary_key"`
	OrderNumber string   `json:"orderNumber" gorm:"unique_index"`
	UserID      types.ID `json:"userId"`

	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`

	// independent status axes: a transition updates exactly one of them
	OrderStatus   OrderStatus   `json:"orderStatus"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
	UpdateTime types.Timestamp `json:"updateTime" sql:"type:DATETIME(6)"`
}

type OrderStatusTransition struct {
	OrderID   types.ID `json:"order_id"`
	OldStatus string   `json:"old_status"`
	NewStatus string   `json:"new_status"`
}

type OrderQuery struct {
	Status        OrderStatus   `json:"status" form:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus" form:"paymentStatus"`
}
