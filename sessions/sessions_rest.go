package sessions

import (
	"net/http"
	"shopfront/account"
	"shopfront/bizerror"
	"shopfront/persistence"
	"shopfront/session"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

var (
	PathSessions = "/v1/sessions"
)

// one limiter per client address, dropped after a period of inactivity
var (
	LoginLimiterCache = cache.New(10*time.Minute, 1*time.Minute)

	loginLimitInterval = 1 * time.Second
	loginLimitBurst    = 5
)

func RegisterSessionsHandler(r *gin.Engine) {
	g := r.Group(PathSessions)
	g.POST("", SimpleLoginHandler)
	g.DELETE("", SimpleLogoutHandler)
	g.GET("", SessionQueryHandler)
}

func SessionQueryHandler(c *gin.Context) {
	s := session.ExtractSessionFromGinContext(c)
	if s.Token == "" {
		panic(bizerror.ErrUnauthenticated)
	}
	c.JSON(http.StatusOK, s)
}

func SimpleLogoutHandler(c *gin.Context) {
	token, _ := c.Cookie(session.KeySecToken) // ErrNoCookie
	if token != "" {
		session.TokenCache.Delete(token)
	}
	c.SetCookie(session.KeySecToken, "", -1, "/", "", false, false)
	c.AbortWithStatus(http.StatusNoContent)
}

func SimpleLoginHandler(c *gin.Context) {
	if !loginLimiter(c.ClientIP()).Allow() {
		panic(bizerror.ErrTooManyLoginAttempts)
	}

	login := session.LoginRequest{}
	if err := c.ShouldBindBodyWith(&login, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}

	identity := session.Identity{}
	db := persistence.ActiveDataSourceManager.GormDB(c.Request.Context())
	if err := db.Model(&account.User{}).Where(&account.User{Name: login.Name, Secret: account.HashSha256(login.Password)}).
		Scan(&identity).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			panic(bizerror.ErrUnauthenticated)
		}
		panic(err)
	}

	token := uuid.New().String()
	perms := account.LoadPermFunc(identity.ID)
	s := session.Session{Token: token, Identity: identity, Perms: perms, SigningTime: time.Now()}
	session.TokenCache.Set(token, &s, cache.DefaultExpiration)

	c.SetCookie(session.KeySecToken, token, int(session.TokenExpiration/time.Second), "/", "", false, false)
	c.JSON(http.StatusOK, &s)
}

func loginLimiter(clientIP string) *rate.Limiter {
	if v, found := LoginLimiterCache.Get(clientIP); found {
		return v.(*rate.Limiter)
	}
	l := rate.NewLimiter(rate.Every(loginLimitInterval), loginLimitBurst)
	LoginLimiterCache.Set(clientIP, l, cache.DefaultExpiration)
	return l
}
