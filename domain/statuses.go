package domain

// Status enumerations are flat sets: any valid status may be set from any
// other valid status. Membership is an exact case-sensitive match.

type OrderStatus string

const (
	OrderStatusPending    = OrderStatus("pending")
	OrderStatusProcessing = OrderStatus("processing")
	OrderStatusShipped    = OrderStatus("shipped")
	OrderStatusDelivered  = OrderStatus("delivered")
	OrderStatusCancelled  = OrderStatus("cancelled")
)

var OrderStatuses = []OrderStatus{OrderStatusPending, OrderStatusProcessing,
	OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled}

func (s OrderStatus) IsValid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  = PaymentStatus("pending")
	PaymentStatusPaid     = PaymentStatus("paid")
	PaymentStatusFailed   = PaymentStatus("failed")
	PaymentStatusRefunded = PaymentStatus("refunded")
)

var PaymentStatuses = []PaymentStatus{PaymentStatusPending, PaymentStatusPaid,
	PaymentStatusFailed, PaymentStatusRefunded}

func (s PaymentStatus) IsValid() bool {
	for _, v := range PaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type MessageStatus string

const (
	MessageStatusNew     = MessageStatus("new")
	MessageStatusRead    = MessageStatus("read")
	MessageStatusReplied = MessageStatus("replied")
	MessageStatusClosed  = MessageStatus("closed")
)

var MessageStatuses = []MessageStatus{MessageStatusNew, MessageStatusRead,
	MessageStatusReplied, MessageStatusClosed}

func (s MessageStatus) IsValid() bool {
	for _, v := range MessageStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type ReviewStatus string

const (
	ReviewStatusPending  = ReviewStatus("pending")
	ReviewStatusApproved = ReviewStatus("approved")
	ReviewStatusHidden   = ReviewStatus("hidden")
	ReviewStatusRemoved  = ReviewStatus("removed")
)

var ReviewStatuses = []ReviewStatus{ReviewStatusPending, ReviewStatusApproved,
	ReviewStatusHidden, ReviewStatusRemoved}

func (s ReviewStatus) IsValid() bool {
	for _, v := range ReviewStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type ReviewAction string

const (
	ReviewActionApprove = ReviewAction("approve")
	ReviewActionPending = ReviewAction("pending")
	ReviewActionHide    = ReviewAction("hide")
	ReviewActionRemove  = ReviewAction("remove")
)

func (a ReviewAction) TargetStatus() (ReviewStatus, bool) {
	switch a {
	case ReviewActionApprove:
		return ReviewStatusApproved, true
	case ReviewActionPending:
		return ReviewStatusPending, true
	case ReviewActionHide:
		return ReviewStatusHidden, true
	case ReviewActionRemove:
		return ReviewStatusRemoved, true
	}
	return "", false
}

type ProductArchiveAction string

const (
	ProductActionArchive   = ProductArchiveAction("archive")
	ProductActionUnarchive = ProductArchiveAction("unarchive")
)

func (a ProductArchiveAction) TargetArchived() (bool, bool) {
	switch a {
	case ProductActionArchive:
		return true, true
	case ProductActionUnarchive:
		return false, true
	}
	return false, false
}
