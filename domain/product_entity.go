package domain

import (
	"github.com/fundwit/go-commons/types"
)

type Product struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	Name        string  `json:"name"`
	Description string  `json:"description" sql:"type:TEXT"`
	Price       float64 `json:"price"`

	IsArchived bool `json:"isArchived"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
	UpdateTime types.Timestamp `json:"updateTime" sql:"type:DATETIME(6)"`
}

type ProductArchiveResult struct {
	ProductID  types.ID `json:"product_id"`
	IsArchived bool     `json:"is_archived"`
}

type ProductCreation struct {
	Name        string  `json:"name" binding:"required,lte=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
}

type ProductQuery struct {
	IncludeArchived bool `json:"includeArchived" form:"includeArchived"`
}
