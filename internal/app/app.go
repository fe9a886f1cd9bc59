package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/catalogfile"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type App struct {
	ctx context.Context
	cfg config.Config

	orderSerde schema.Serde

	catalog       service.CatalogService
	cart          *service.CartStore
	ordersRepo    storage.OrdersRepository
	sqldb         storage.SQLDB
	orderProducer kafka.OrderEventsProducer
	salesProc     kafka.SalesCounterProcessor
	salesView     kafka.SalesView

	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerdes()
	app.initCatalog()
	app.initStorage()
	app.initOutboundAdapters()
	app.initCore()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	orderSS := app.cfg.Broker.Topics.OrderEvents + "-value"
	orderSerde, err := schema.NewSerdeOrderPlacedV1(
		app.ctx,
		schema.SubjectOpt(orderSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.orderSerde = orderSerde
}

func (app *App) initCatalog() {
	const op = "App.initCatalog"

	products, err := catalogfile.Load(app.cfg.CatalogFile)
	if err != nil {
		app.fallDown(op, err)
	}

	app.catalog = service.NewCatalogService(products)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}

	app.sqldb = sqldb
	app.ordersRepo = storage.NewOrdersRepository(sqldb)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	seedBrokers := app.cfg.Broker.SeedBrokers
	orderTopic := app.cfg.Broker.Topics.OrderEvents
	salesGroup := app.cfg.Broker.Consumers.SalesCounterGroup

	orderProducer, err := kafka.NewOrderEventsProducer(
		kafka.ProducerClientOpt(app.ctx, seedBrokers, orderTopic),
		kafka.ProducerEncoderOpt(app.orderSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	salesProc, err := kafka.NewSalesCounterProcessor(
		seedBrokers, orderTopic, salesGroup, app.orderSerde,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	salesView, err := kafka.NewSalesView(seedBrokers, salesGroup)
	if err != nil {
		app.fallDown(op, err)
	}

	app.orderProducer = orderProducer
	app.salesProc = salesProc
	app.salesView = salesView
}

func (app *App) initCore() {
	app.cart = service.NewCartStore()
}

// newCheckout builds a fresh single-use checkout machine.
func (app *App) newCheckout() port.CheckoutSubmitter {
	cfg := service.CheckoutConfig{
		ProcessingDelay: app.cfg.Checkout.ProcessingDelay,
		ClearDelay:      app.cfg.Checkout.ClearDelay,
	}
	return service.NewCheckout(cfg, app.cart, app.ordersRepo, app.orderProducer)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.catalog)
	httphandler.RegisterCart(mux, app.cart)
	httphandler.RegisterCheckout(mux, app.newCheckout)
	httphandler.RegisterSales(mux, app.salesView)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)
	go app.salesProc.Run(app.ctx)
	go app.salesView.Run(app.ctx)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.salesProc.Close()
	app.orderProducer.Close()
	app.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
