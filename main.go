package main

import (
	"log"
	"net/http"
	"shopfront/account"
	"shopfront/bizerror"
	"shopfront/client/s3"
	"shopfront/domain"
	"shopfront/domain/message"
	"shopfront/domain/notification"
	"shopfront/domain/order"
	"shopfront/domain/product"
	"shopfront/domain/review"
	"shopfront/event"
	"shopfront/infra/tracing"
	"shopfront/misc"
	"shopfront/persistence"
	"shopfront/servehttp"
	"shopfront/session"
	"shopfront/sessions"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("service start")

	dbConfig, err := persistence.ParseDatabaseConfigFromEnv()
	if err != nil {
		log.Fatalf("parse database config failed %v\n", err)
	}

	// create database (no conflict)
	if dbConfig.DriverType == "mysql" {
		if err := persistence.PrepareMysqlDatabase(dbConfig.DriverArgs); err != nil {
			log.Fatalf("failed to prepare database %v\n", err)
		}
	}

	ds := &persistence.DataSourceManager{DatabaseConfig: dbConfig}
	if err := ds.Start(); err != nil {
		log.Fatalf("database connection failed %v\n", err)
	}
	defer ds.Stop()
	persistence.ActiveDataSourceManager = ds

	// database migration (race condition)
	err = ds.GormDB(nil).AutoMigrate(
		&domain.Order{}, &domain.ContactMessage{}, &domain.MessageReply{},
		&domain.ProductReview{}, &domain.Product{}, &domain.Notification{},
		&event.EventRecord{},
		&account.User{}, &account.Role{}, &account.Permission{},
		&account.RolePermissionBinding{}, &account.UserRoleBinding{},
	).Error
	if err != nil {
		log.Fatalf("database migration failed %v\n", err)
	}

	if err := account.DefaultSecurityConfiguration(); err != nil {
		log.Fatalf("security configuration failed %v\n", err)
	}

	tracingCloser, err := tracing.Bootstrap(misc.ServiceName())
	if err != nil {
		log.Fatalf("tracing bootstrap failed %v\n", err)
	}
	defer tracingCloser.Close()

	s3.Bootstrap()

	engine := gin.Default()
	engine.HandleMethodNotAllowed = true
	engine.Use(bizerror.ErrorHandling(), tracing.TracingIngress())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, misc.ServiceName())
	})

	sessions.RegisterSessionsHandler(engine)
	account.RegisterUsersRestAPI(engine, session.SimpleAuthFilter())

	order.RegisterOrdersRestAPI(engine, session.SimpleAuthFilter())
	message.RegisterMessagesRestAPI(engine, session.SimpleAuthFilter())
	review.RegisterReviewsRestAPI(engine, session.SimpleAuthFilter())
	product.RegisterProductsRestAPI(engine, session.SimpleAuthFilter())
	product.RegisterProductImagesRestAPI(engine, session.SimpleAuthFilter())
	notification.RegisterNotificationsRestAPI(engine, session.SimpleAuthFilter())

	servehttp.StartHTTPServer(engine)
}
