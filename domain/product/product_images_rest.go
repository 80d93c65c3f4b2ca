package product

import (
	"net/http"
	"shopfront/bizerror"
	"shopfront/misc"
	"shopfront/session"

	"github.com/gin-gonic/gin"
)

var (
	PathProductImages = "/v1/product-images"

	DetailProductImageFunc = DetailProductImage
	CreateProductImageFunc = CreateProductImage
)

func RegisterProductImagesRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathProductImages, middleWares...)
	g.GET(":id", handleGetProductImage)
	g.POST(":id", handleCreateProductImage)
}

func handleGetProductImage(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	bytes, err := DetailProductImageFunc(id, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.Data(http.StatusOK, "image/png", bytes)
}

func handleCreateProductImage(c *gin.Context) {
	id, err := misc.BindingPathID(c)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	file, err := c.FormFile("file")
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	src, err := file.Open()
	if err != nil {
		panic(err)
	}
	defer src.Close()

	if err := CreateProductImageFunc(id, src, session.ExtractSessionFromGinContext(c)); err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, gin.H{})
}
