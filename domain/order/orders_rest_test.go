package order_test

import (
	"net/http"
	"net/http/httptest"
	"shopfront/bizerror"
	"shopfront/domain"
	"shopfront/domain/order"
	"shopfront/session"
	"shopfront/testinfra"
	"strings"
	"testing"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func TestUpdateOrderStatusAPI(t *testing.T) {
	RegisterTestingT(t)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	order.RegisterOrdersRestAPI(router)

	t.Run("should be able to validate the path id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, order.PathOrders+"/abc/status",
			strings.NewReader(`{"status":"shipped"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"common.bad_param", "message":"invalid id 'abc'", "data":null}`))
	})

	t.Run("should be able to validate the body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, order.PathOrders+"/42/status", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"common.bad_param", "message":"EOF", "data":null}`))

		req = httptest.NewRequest(http.MethodPut, order.PathOrders+"/42/status", strings.NewReader(`{}`))
		status, body, _ = testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"common.bad_param",
			"message":"Key: 'OrderStatusUpdating.Status' Error:Field validation for 'Status' failed on the 'required' tag",
			"data":null}`))
	})

	t.Run("business failures should respond 200 with success false", func(t *testing.T) {
		order.TransitionOrderStatusFunc = func(id types.ID, newStatus domain.OrderStatus, sec *session.Session) (*domain.OrderStatusTransition, error) {
			return nil, bizerror.ErrInvalidStatus
		}
		req := httptest.NewRequest(http.MethodPut, order.PathOrders+"/42/status",
			strings.NewReader(`{"status":"unknown"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"success":false, "error":"invalid status"}`))
	})

	t.Run("not found should escalate to 404", func(t *testing.T) {
		order.TransitionOrderStatusFunc = func(id types.ID, newStatus domain.OrderStatus, sec *session.Session) (*domain.OrderStatusTransition, error) {
			return nil, bizerror.ErrNotFound
		}
		req := httptest.NewRequest(http.MethodPut, order.PathOrders+"/42/status",
			strings.NewReader(`{"status":"shipped"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusNotFound))
		Expect(body).To(MatchJSON(`{"code":"common.record_not_found", "message":"record not found", "data":null}`))
	})

	t.Run("should be able to handle the transition successfully", func(t *testing.T) {
		var reqId types.ID
		var reqStatus domain.OrderStatus
		order.TransitionOrderStatusFunc = func(id types.ID, newStatus domain.OrderStatus, sec *session.Session) (*domain.OrderStatusTransition, error) {
			reqId, reqStatus = id, newStatus
			return &domain.OrderStatusTransition{OrderID: id, OldStatus: "pending", NewStatus: string(newStatus)}, nil
		}
		req := httptest.NewRequest(http.MethodPut, order.PathOrders+"/42/status",
			strings.NewReader(`{"status":"shipped"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"success":true, "order_id":"42", "old_status":"pending", "new_status":"shipped"}`))
		Expect(reqId).To(Equal(types.ID(42)))
		Expect(reqStatus).To(Equal(domain.OrderStatusShipped))
	})
}

func TestUpdatePaymentStatusAPI(t *testing.T) {
	RegisterTestingT(t)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	order.RegisterOrdersRestAPI(router)

	t.Run("should be able to handle the transition successfully", func(t *testing.T) {
		order.TransitionPaymentStatusFunc = func(id types.ID, newStatus domain.PaymentStatus, sec *session.Session) (*domain.OrderStatusTransition, error) {
			return &domain.OrderStatusTransition{OrderID: id, OldStatus: "pending", NewStatus: string(newStatus)}, nil
		}
		req := httptest.NewRequest(http.MethodPut, order.PathOrders+"/42/payment-status",
			strings.NewReader(`{"status":"paid"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"success":true, "order_id":"42", "old_status":"pending", "new_status":"paid"}`))
	})

	t.Run("business failures should respond 200 with success false", func(t *testing.T) {
		order.TransitionPaymentStatusFunc = func(id types.ID, newStatus domain.PaymentStatus, sec *session.Session) (*domain.OrderStatusTransition, error) {
			return nil, bizerror.ErrInvalidStatus
		}
		req := httptest.NewRequest(http.MethodPut, order.PathOrders+"/42/payment-status",
			strings.NewReader(`{"status":"shipped"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"success":false, "error":"invalid status"}`))
	})
}

func TestQueryOrdersAPI(t *testing.T) {
	RegisterTestingT(t)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	order.RegisterOrdersRestAPI(router)

	t.Run("should be able to handle query request successfully", func(t *testing.T) {
		var q1 domain.OrderQuery
		order.QueryOrdersFunc = func(q domain.OrderQuery, sec *session.Session) ([]domain.Order, error) {
			q1 = q
			return []domain.Order{{ID: 42, OrderNumber: "SF-1001", UserID: 10,
				OrderStatus: domain.OrderStatusShipped, PaymentStatus: domain.PaymentStatusPaid}}, nil
		}
		req := httptest.NewRequest(http.MethodGet, order.PathOrders+"?status=shipped", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"total": 1, "list": [{"id":"42", "orderNumber":"SF-1001", "userId":"10",
			"subtotal":0, "shipping":0, "tax":0, "total":0,
			"orderStatus":"shipped", "paymentStatus":"paid",
			"createTime":null, "updateTime":null}]}`))
		Expect(q1).To(Equal(domain.OrderQuery{Status: domain.OrderStatusShipped}))
	})
}
