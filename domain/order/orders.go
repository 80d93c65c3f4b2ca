package order

import (
	"errors"
	"shopfront/account"
	"shopfront/bizerror"
	"shopfront/domain"
	"shopfront/domain/notification"
	"shopfront/event"
	"shopfront/persistence"
	"shopfront/session"
	"strconv"

	"github.com/fundwit/go-commons/types"
	"github.com/jinzhu/gorm"
)

var (
	TransitionOrderStatusFunc   = TransitionOrderStatus
	TransitionPaymentStatusFunc = TransitionPaymentStatus
	QueryOrdersFunc             = QueryOrders
	DetailOrderFunc             = DetailOrder
)

// TransitionOrderStatus moves the order status axis. Setting the current
// status again is an idempotent no-op: success, no notification. Otherwise
// the status update and exactly one customer notification are committed in
// one transaction.
func TransitionOrderStatus(id types.ID, newStatus domain.OrderStatus, sec *session.Session) (*domain.OrderStatusTransition, error) {
	if !newStatus.IsValid() {
		return nil, bizerror.ErrInvalidStatus
	}
	if !sec.Perms.HasRole(account.SystemAdminPermission.ID) {
		return nil, bizerror.ErrForbidden
	}

	var result *domain.OrderStatusTransition
	var ev *event.EventRecord
	txErr := persistence.ActiveDataSourceManager.GormDB(sec.Context).Transaction(func(tx *gorm.DB) error {
		order, err := findOrder(tx, id)
		if err != nil {
			return err
		}
		result = &domain.OrderStatusTransition{OrderID: order.ID,
			OldStatus: string(order.OrderStatus), NewStatus: string(newStatus)}
		if order.OrderStatus == newStatus {
			return nil
		}

		now := types.CurrentTimestamp()
		if err := updateOrderColumn(tx, order.ID, "order_status", string(newStatus), now); err != nil {
			return err
		}

		title, body := notification.ComposeOrderStatusNotification(order.OrderNumber, newStatus)
		if err := notification.CreateNotificationFunc(&domain.Notification{
			UserID: order.UserID, Type: domain.NotificationTypeOrderStatus,
			Title: title, Body: body, RelatedID: order.ID,
		}, tx); err != nil {
			return err
		}

		ev, err = event.CreateEvent("ORDER", order.ID, order.OrderNumber, event.EventCategoryPropertyUpdated,
			[]event.UpdatedProperty{{PropertyName: "OrderStatus", PropertyDesc: "OrderStatus",
				OldValue: string(order.OrderStatus), OldValueDesc: string(order.OrderStatus),
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

// TransitionPaymentStatus moves the payment status axis only; the order
// status axis is never touched by it.
func TransitionPaymentStatus(id types.ID, newStatus domain.PaymentStatus, sec *session.Session) (*domain.OrderStatusTransition, error) {
	if !newStatus.IsValid() {
		return nil, bizerror.ErrInvalidStatus
	}
	if !sec.Perms.HasRole(account.SystemAdminPermission.ID) {
		return nil, bizerror.ErrForbidden
	}

	var result *domain.OrderStatusTransition
	var ev *event.EventRecord
	txErr := persistence.ActiveDataSourceManager.GormDB(sec.Context).Transaction(func(tx *gorm.DB) error {
		order, err := findOrder(tx, id)
		if err != nil {
			return err
		}
		result = &domain.OrderStatusTransition{OrderID: order.ID,
			OldStatus: string(order.PaymentStatus), NewStatus: string(newStatus)}
		if order.PaymentStatus == newStatus {
			return nil
		}

		now := types.CurrentTimestamp()
		if err := updateOrderColumn(tx, order.ID, "payment_status", string(newStatus), now); err != nil {
			return err
		}

		title, body := notification.ComposePaymentStatusNotification(order.OrderNumber, newStatus)
		if err := notification.CreateNotificationFunc(&domain.Notification{
			UserID: order.UserID, Type: domain.NotificationTypePaymentStatus,
			Title: title, Body: body, RelatedID: order.ID,
		}, tx); err != nil {
			return err
		}

		ev, err = event.CreateEvent("ORDER", order.ID, order.OrderNumber, event.EventCategoryPropertyUpdated,
			[]event.UpdatedProperty{{PropertyName: "PaymentStatus", PropertyDesc: "PaymentStatus",
				OldValue: string(order.PaymentStatus), OldValueDesc: string(order.PaymentStatus),
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

func QueryOrders(q domain.OrderQuery, sec *session.Session) ([]domain.Order, error) {
	if !sec.Perms.HasRole(account.SystemAdminPermission.ID) {
		return nil, bizerror.ErrForbidden
	}

	db := persistence.ActiveDataSourceManager.GormDB(sec.Context)
	query := db.Model(&domain.Order{})
	if q.Status != "" {
		query = query.Where("order_status = ?", q.Status)
	}
	if q.PaymentStatus != "" {
		query = query.Where("payment_status = ?", q.PaymentStatus)
	}

	orders := []domain.Order{}
	if err := query.Order("create_time DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func DetailOrder(id types.ID, sec *session.Session) (*domain.Order, error) {
	if !sec.Perms.HasRole(account.SystemAdminPermission.ID) {
		return nil, bizerror.ErrForbidden
	}

	order, err := findOrder(persistence.ActiveDataSourceManager.GormDB(sec.Context), id)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func findOrder(db *gorm.DB, id types.ID) (*domain.Order, error) {
	order := domain.Order{}
	if err := db.Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bizerror.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func updateOrderColumn(tx *gorm.DB, id types.ID, column, value string, now types.Timestamp) error {
	db := tx.Model(&domain.Order{}).Where("id = ?", id).
		Updates(map[string]interface{}{column: value, "update_time": now})
	if db.Error != nil {
		return db.Error
	}
	if db.RowsAffected != 1 {
		return errors.New("expected affected row is 1, but actual is " + strconv.FormatInt(db.RowsAffected, 10))
	}
	return nil
}
