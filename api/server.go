package api

import (
	"context"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/codeXAI06/ReliefLink/logmodule"
	"github.com/codeXAI06/ReliefLink/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.ReliefCore
	mongoStore store.MongoStore

	// job pool enqueuer
	background *machinery.Server

	// http client for calling external services
	httpClient *http.Client
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundServer *machinery.Server) *Server {
	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:      store.NewReliefStore(ormDB, mongoStore),
		mongoStore: mongoStore,
		background: backgroundServer,
		httpClient: httpClient,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listRequests)
		requestRoute.GET("/:requestID", s.getRequest)
		requestRoute.PATCH("/:requestID", s.updateRequestStatus)
		requestRoute.GET("/:requestID/history", s.requestHistory)
		requestRoute.GET("/:requestID/explain", s.explainRequest)
	}

	helperRoute := apiRoute.Group("/helpers")
	{
		helperRoute.POST("", s.helperRegister)
		helperRoute.POST("/login", s.helperLogin)
	}

	helperRoute.Use(s.recognizeHelperMiddleware())
	{
		helperRoute.PATCH("/:helperID/location", s.helperUpdateLocation)
		helperRoute.GET("/:helperID/requests", s.helperRequests)
		helperRoute.GET("/:helperID/recommendations", s.helperRecommendations)
	}

	aiRoute := apiRoute.Group("/ai")
	{
		aiRoute.POST("/analyze", s.aiAnalyze)
		aiRoute.POST("/priority", s.aiPriority)
		aiRoute.POST("/categorize", s.aiCategorize)
		aiRoute.POST("/check-duplicate", s.aiCheckDuplicate)
		aiRoute.GET("/logs/:requestID", s.aiLogs)
	}

	statsRoute := r.Group("/api/stats")
	statsRoute.Use(logmodule.Ginrus("Stats"))
	statsRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		statsRoute.GET("", s.stats)
		statsRoute.GET("/summary", s.statsSummary)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.GET("/requests/flagged", s.listFlaggedRequests)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "ReliefLink 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
