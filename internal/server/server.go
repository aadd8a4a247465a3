package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"libgo-server/internal/handler"
	"libgo-server/internal/service"
)

type Server struct {
	echo           *echo.Echo
	paymentHandler *handler.PaymentHandler
	userHandler    *handler.UserHandler
	bookHandler    *handler.BookHandler
	orderHandler   *handler.OrderHandler
}

func NewServer(
	paymentService service.PaymentService,
	userService service.UserService,
	bookService service.BookService,
	orderService service.OrderService,
	logger zerolog.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := logger.Info()
			if v.Error != nil {
				event = logger.Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		paymentHandler: handler.NewPaymentHandler(paymentService),
		userHandler:    handler.NewUserHandler(userService),
		bookHandler:    handler.NewBookHandler(bookService),
		orderHandler:   handler.NewOrderHandler(orderService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	e := s.echo

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "LibGo server is running")
	})

	// -------- users --------
	e.POST("/users", s.userHandler.Register)
	e.GET("/users", s.userHandler.GetByEmail)
	e.GET("/users/:email/role", s.userHandler.GetRole)
	e.PATCH("/users", s.userHandler.UpdateProfile)

	// -------- books --------
	e.GET("/books", s.bookHandler.ListPublished)
	e.GET("/books/book-details/:id", s.bookHandler.GetDetails)
	e.POST("/books", s.bookHandler.Create)
	e.GET("/books/my-book", s.bookHandler.ListMyBooks)

	// -------- orders --------
	e.POST("/orders", s.orderHandler.Place)
	e.GET("/orders", s.orderHandler.ListByCustomer)
	e.PATCH("/orders/:id", s.orderHandler.UpdateStatus)

	// -------- payments / reconciliation --------
	e.POST("/create-checkout-session", s.paymentHandler.CreateCheckoutSession)
	e.PATCH("/dashboard/my-order", s.paymentHandler.ReconcileMyOrder)
	e.GET("/invoices", s.paymentHandler.ListInvoices)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
