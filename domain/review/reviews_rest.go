package review

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

var PathReviews = "/v1/reviews"

type ReviewModeration struct {
	Action string `json:"action" binding:"required"`
}

type reviewStatusTransitionBody struct {
	Success   bool     `json:"success"`
	ReviewID  types.ID `json:"review_id"`
	OldStatus string   `json:"old_status"`
	NewStatus string   `json:"new_status"`
}

func RegisterReviewsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathReviews, middleWares...)
	g.GET("", handleQueryReviews)
	g.PUT(":id/status", handleSetReviewStatus)
}

func handleQueryReviews(c *gin.Context) {
	query := domain.ReviewQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	reviews, err := QueryReviewsFunc(query, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: reviews, Total: uint64(len(reviews))})
}

func handleSetReviewStatus(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	moderation := ReviewModeration{}
	if err := c.ShouldBindBodyWith(&moderation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	result, err := SetReviewStatusFunc(id, domain.ReviewAction(moderation.Action),
		session.ExtractSessionFromGinContext(c))
	if err != nil {
		bizerror.RespondActionFailure(c, err, map[string]interface{}{"reviewId": id, "action": moderation.Action})
		return
	}
	c.JSON(http.StatusOK, &reviewStatusTransitionBody{Success: true, ReviewID: result.ReviewID,
		OldStatus: result.OldStatus, NewStatus: result.NewStatus})
}
