package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
	"gorm.io/gorm"

	"finance-control-go/internal/config"
	"finance-control-go/internal/observability"
	"finance-control-go/internal/reports"
)

type Server struct {
	cfg     *config.Config
	db      *gorm.DB
	engine  *reports.Engine
	log     *logrus.Logger
	metrics *observability.Metrics

	payableSchema    *gojsonschema.Schema
	receivableSchema *gojsonschema.Schema
}

func NewServer(cfg *config.Config, db *gorm.DB, engine *reports.Engine, metrics *observability.Metrics, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors(cfg))
	r.Use(requestLogger(log))
	r.Use(httpMetrics(metrics))

	s := &Server{
		cfg:              cfg,
		db:               db,
		engine:           engine,
		log:              log,
		metrics:          metrics,
		payableSchema:    mustCompileSchema(payableSchemaJSON),
		receivableSchema: mustCompileSchema(receivableSchemaJSON),
	}

	api := r.Group("/api")
	api.POST("/auth/register", s.register)
	api.POST("/auth/login", s.login)

	authorized := api.Group("")
	authorized.Use(s.requireAuth())
	{
		authorized.GET("/auth/me", s.me)

		p := authorized.Group("/payables")
		p.GET("", s.listPayables)
		p.GET("/summary", s.payablesSummary)
		p.GET("/:id", s.getPayable)
		p.POST("", s.createPayable)
		p.PUT("/:id", s.updatePayable)
		p.DELETE("/:id", s.deletePayable)
		p.POST("/:id/pay", s.payPayable)
		p.POST("/:id/cancel", s.cancelPayable)

		rc := authorized.Group("/receivables")
		rc.GET("", s.listReceivables)
		rc.GET("/:id", s.getReceivable)
		rc.POST("", s.createReceivable)
		rc.PUT("/:id", s.updateReceivable)
		rc.DELETE("/:id", s.deleteReceivable)
		rc.POST("/:id/receive", s.receiveReceivable)
		rc.POST("/:id/cancel", s.cancelReceivable)

		sp := authorized.Group("/suppliers")
		sp.GET("", s.listSuppliers)
		sp.GET("/:id", s.getSupplier)
		sp.POST("", s.createSupplier)
		sp.PUT("/:id", s.updateSupplier)
		sp.DELETE("/:id", s.deleteSupplier)

		cl := authorized.Group("/clients")
		cl.GET("", s.listClients)
		cl.GET("/:id", s.getClient)
		cl.POST("", s.createClient)
		cl.PUT("/:id", s.updateClient)
		cl.DELETE("/:id", s.deleteClient)

		ba := authorized.Group("/bank-accounts")
		ba.GET("", s.listBankAccounts)
		ba.GET("/:id", s.getBankAccount)
		ba.POST("", s.createBankAccount)
		ba.PUT("/:id", s.updateBankAccount)
		ba.DELETE("/:id", s.deleteBankAccount)

		cc := authorized.Group("/credit-cards")
		cc.GET("", s.listCreditCards)
		cc.GET("/:id", s.getCreditCard)
		cc.POST("", s.createCreditCard)
		cc.PUT("/:id", s.updateCreditCard)
		cc.DELETE("/:id", s.deleteCreditCard)

		inv := authorized.Group("/investments")
		inv.GET("", s.listInvestments)
		inv.GET("/:id", s.getInvestment)
		inv.POST("", s.createInvestment)
		inv.PUT("/:id", s.updateInvestment)
		inv.DELETE("/:id", s.deleteInvestment)

		authorized.GET("/dashboard", s.dashboard)
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}
