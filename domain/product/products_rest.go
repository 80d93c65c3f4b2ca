package product

import (
	"net/http"
	"shopfront/bizerror"
	"shopfront/domain"
	"shopfront/misc"
	"shopfront/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
)

var PathProducts = "/v1/products"

type ProductArchiveUpdating struct {
	Action string `json:"action" binding:"required"`
}

type productArchiveBody struct {
	Success    bool     `json:"success"`
	ProductID  types.ID `json:"product_id"`
	IsArchived bool     `json:"is_archived"`
}

// the archive endpoint reports failures under "message", not "error"
type productArchiveFailureBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func RegisterProductsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathProducts, middleWares...)
	g.GET("", handleQueryProducts)
	g.POST("", handleCreateProduct)
	g.PUT(":id/archive", handleToggleProductArchive)
}

func handleQueryProducts(c *gin.Context) {
	query := domain.ProductQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	products, err := QueryProductsFunc(query, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &misc.PagedBody{List: products, Total: uint64(len(products))})
}

func handleCreateProduct(c *gin.Context) {
	creation := domain.ProductCreation{}
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	product, err := CreateProductFunc(creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusCreated, product)
}

func handleToggleProductArchive(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	updating := ProductArchiveUpdating{}
	if err := c.ShouldBindBodyWith(&updating, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	result, err := ToggleProductArchiveFunc(id, domain.ProductArchiveAction(updating.Action),
		session.ExtractSessionFromGinContext(c))
	if err != nil {
		if bizerror.ShouldEscalate(err) {
			panic(err)
		}
		logrus.WithFields(logrus.Fields{"productId": id, "action": updating.Action}).
			Error("action failed: ", err)
		c.JSON(http.StatusOK, &productArchiveFailureBody{Success: false, Message: bizerror.SafeActionMessage(err)})
		return
	}
	c.JSON(http.StatusOK, &productArchiveBody{Success: true, ProductID: result.ProductID,
		IsArchived: result.IsArchived})
}
