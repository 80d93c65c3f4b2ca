package domain

import (
	"github.com/fundwit/go-commons/types"
)

type ProductReview struct {
	ID        types.ID `json:"id" gorm:"primary_key"`
	ProductID types.ID `json:"productId"`
	UserID    types.ID `json:"userId"`

	Rating int          `json:"rating"` // 1-5
	Body   string       `json:"body" sql:"type:TEXT"`
	Status ReviewStatus `json:"status"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

type ReviewStatusTransition struct {
	ReviewID  types.ID `json:"review_id"`
	OldStatus string   `json:"old_status"`
	NewStatus string   `json:"new_status"`
}

type ReviewQuery struct {
	ProductID types.ID     `json:"productId" form:"productId"`
	Status    ReviewStatus `json:"status" form:"status"`
}
