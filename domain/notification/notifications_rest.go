package notification

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
	PathNotifications = "/v1/notifications"
)

type NotificationReadUpdating struct {
	IsRead *bool `json:"isRead" binding:"required"`
}

type notificationReadBody struct {
	Success        bool     `json:"success"`
	NotificationID types.ID `json:"notification_id"`
	IsRead         bool     `json:"is_read"`
}

func RegisterNotificationsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathNotifications, middleWares...)
	g.GET("", handleQueryNotifications)
	g.PATCH(":id/read", handleUpdateNotificationRead)
}

func handleQueryNotifications(c *gin.Context) {
	query := domain.NotificationQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	records, err := QueryNotificationsFunc(query, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: records, Total: uint64(len(records))})
}

func handleUpdateNotificationRead(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	updating := NotificationReadUpdating{}
	if err := c.ShouldBindBodyWith(&updating, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	if err := UpdateNotificationReadFunc(id, *updating.IsRead, session.ExtractSessionFromGinContext(c)); err != nil {
		bizerror.RespondActionFailure(c, err, map[string]interface{}{"notificationId": id, "isRead": *updating.IsRead})
		return
	}
	c.JSON(http.StatusOK, &notificationReadBody{Success: true, NotificationID: id, IsRead: *updating.IsRead})
}
