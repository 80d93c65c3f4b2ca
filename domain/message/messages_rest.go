package message

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

var PathMessages = "/v1/messages"

type MessageStatusUpdating struct {
	Status string `json:"status" binding:"required"`
}

type messageStatusTransitionBody struct {
	Success   bool     `json:"success"`
	MessageID types.ID `json:"message_id"`
	NewStatus string   `json:"new_status"`
}

type messageReplyBody struct {
	Success   bool     `json:"success"`
	MessageID types.ID `json:"message_id"`
	ReplyID   types.ID `json:"reply_id"`
}

func RegisterMessagesRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathMessages, middleWares...)
	g.GET("", handleQueryMessages)
	g.GET(":id", handleDetailMessage)
	g.PUT(":id/status", handleTransitionMessageStatus)
	g.POST(":id/replies", handleReplyToMessage)
}

func handleQueryMessages(c *gin.Context) {
	query := domain.MessageQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	messages, err := QueryMessagesFunc(query, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: messages, Total: uint64(len(messages))})
}

func handleDetailMessage(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	detail, err := DetailMessageFunc(id, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, detail)
}

func handleTransitionMessageStatus(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	updating := MessageStatusUpdating{}
	if err := c.ShouldBindBodyWith(&updating, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	result, err := TransitionMessageStatusFunc(id, domain.MessageStatus(updating.Status),
		session.ExtractSessionFromGinContext(c))
	if err != nil {
		bizerror.RespondActionFailure(c, err, map[string]interface{}{"messageId": id, "status": updating.Status})
		return
	}
	c.JSON(http.StatusOK, &messageStatusTransitionBody{Success: true, MessageID: result.MessageID,
		NewStatus: result.NewStatus})
}

func handleReplyToMessage(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	creation := MessageReplyCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	reply, err := ReplyToMessageFunc(id, creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		bizerror.RespondActionFailure(c, err, map[string]interface{}{"messageId": id})
		return
	}
	c.JSON(http.StatusOK, &messageReplyBody{Success: true, MessageID: reply.MessageID, ReplyID: reply.ID})
}
