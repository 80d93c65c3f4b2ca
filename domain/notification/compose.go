package notification

import (
	"shopfront/domain"
)

// Composition is a pure mapping from (entity type, new status, display id)
// to a customer facing title and body. Unmapped statuses fall back to a
// generic "has been updated" body instead of failing.

func ComposeOrderStatusNotification(orderNumber string, status domain.OrderStatus) (string, string) {
	title := "Order " + orderNumber + " updated"
	switch status {
	case domain.OrderStatusPending:
		return title, "Your order " + orderNumber + " is pending confirmation."
	case domain.OrderStatusProcessing:
		return title, "Your order " + orderNumber + " is being processed."
	case domain.OrderStatusShipped:
		return title, "Your order " + orderNumber + " has been shipped."
	case domain.OrderStatusDelivered:
		return title, "Your order " + orderNumber + " has been delivered."
	case domain.OrderStatusCancelled:
		return title, "Your order " + orderNumber + " has been cancelled."
	}
	return title, "The status of your order " + orderNumber + " has been updated."
}

func ComposePaymentStatusNotification(orderNumber string, status domain.PaymentStatus) (string, string) {
	title := "Payment update for order " + orderNumber
	switch status {
	case domain.PaymentStatusPending:
		return title, "Payment for your order " + orderNumber + " is pending."
	case domain.PaymentStatusPaid:
		return title, "Payment for your order " + orderNumber + " has been received."
	case domain.PaymentStatusFailed:
		return title, "Payment for your order " + orderNumber + " has failed."
	case domain.PaymentStatusRefunded:
		return title, "Payment for your order " + orderNumber + " has been refunded."
	}
	return title, "The payment status of your order " + orderNumber + " has been updated."
}

func ComposeMessageReplyNotification(subject string) (string, string) {
	if subject == "" {
		return "You have a new reply", "Our team has replied to your message."
	}
	return "You have a new reply", "Our team has replied to your message \"" + subject + "\"."
}
