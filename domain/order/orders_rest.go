package order

import (
	"net/http"
	"shopfront/bizerror"
	"shopfront/domain"
	"shopfront/misc"
	"shopfront/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathOrders = "/v1/orders"
)

type OrderStatusUpdating struct {
	Status string `json:"status" binding:"required"`
}

type orderStatusTransitionBody struct {
	Success   bool     `json:"success"`
	OrderID   types.ID `json:"order_id"`
	OldStatus string   `json:"old_status"`
	NewStatus string   `json:"new_status"`
}

func RegisterOrdersRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathOrders, middleWares...)
	g.GET("", handleQueryOrders)
	g.GET(":id", handleDetailOrder)
	g.PUT(":id/status", handleUpdateOrderStatus)
	g.PUT(":id/payment-status", handleUpdatePaymentStatus)
}

func handleQueryOrders(c *gin.Context) {
	query := domain.OrderQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	orders, err := QueryOrdersFunc(query, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: orders, Total: uint64(len(orders))})
}

func handleDetailOrder(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	detail, err := DetailOrderFunc(id, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, detail)
}

func handleUpdateOrderStatus(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	updating := OrderStatusUpdating{}
	if err := c.ShouldBindBodyWith(&updating, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	r, err := TransitionOrderStatusFunc(id, domain.OrderStatus(updating.Status), session.ExtractSessionFromGinContext(c))
	if err != nil {
		bizerror.RespondActionFailure(c, err, map[string]interface{}{"orderId": id, "status": updating.Status})
		return
	}
	c.JSON(http.StatusOK, &orderStatusTransitionBody{Success: true,
		OrderID: r.OrderID, OldStatus: r.OldStatus, NewStatus: r.NewStatus})
}

func handleUpdatePaymentStatus(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	updating := OrderStatusUpdating{}
	if err := c.ShouldBindBodyWith(&updating, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	r, err := TransitionPaymentStatusFunc(id, domain.PaymentStatus(updating.Status), session.ExtractSessionFromGinContext(c))
	if err != nil {
		bizerror.RespondActionFailure(c, err, map[string]interface{}{"orderId": id, "paymentStatus": updating.Status})
		return
	}
	c.JSON(http.StatusOK, &orderStatusTransitionBody{Success: true,
		OrderID: r.OrderID, OldStatus: r.OldStatus, NewStatus: r.NewStatus})
}
