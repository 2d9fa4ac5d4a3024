// Package main komunitas berbagi API.
//
// @title           Komunitas Berbagi API
// @version         1.0
// @description     Peer-to-peer item sharing service (items, bookings, wallet, notifications).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/app/echoServer"
	authctrl "github.com/mustafidulibadahmad-commits/komunitas-berbagi/app/echoServer/controller/auth"
	bookingctrl "github.com/mustafidulibadahmad-commits/komunitas-berbagi/app/echoServer/controller/booking"
	itemctrl "github.com/mustafidulibadahmad-commits/komunitas-berbagi/app/echoServer/controller/item"
	notifctrl "github.com/mustafidulibadahmad-commits/komunitas-berbagi/app/echoServer/controller/notification"
	paymentctrl "github.com/mustafidulibadahmad-commits/komunitas-berbagi/app/echoServer/controller/payment"
	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/app/echoServer/validation"
	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/config"
	authrepo "github.com/mustafidulibadahmad-commits/komunitas-berbagi/repository/auth"
	bookingrepo "github.com/mustafidulibadahmad-commits/komunitas-berbagi/repository/booking"
	gatewayrepo "github.com/mustafidulibadahmad-commits/komunitas-berbagi/repository/gateway"
	itemrepo "github.com/mustafidulibadahmad-commits/komunitas-berbagi/repository/item"
	notificationrepo "github.com/mustafidulibadahmad-commits/komunitas-berbagi/repository/notification"
	walletrepo "github.com/mustafidulibadahmad-commits/komunitas-berbagi/repository/wallet"
	authsvc "github.com/mustafidulibadahmad-commits/komunitas-berbagi/service/auth"
	bookingsvc "github.com/mustafidulibadahmad-commits/komunitas-berbagi/service/booking"
	itemsvc "github.com/mustafidulibadahmad-commits/komunitas-berbagi/service/item"
	notificationsvc "github.com/mustafidulibadahmad-commits/komunitas-berbagi/service/notification"
	paymentsvc "github.com/mustafidulibadahmad-commits/komunitas-berbagi/service/payment"
	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/util/database"
)

func main() {

	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	// repos
	ar := authrepo.New(db)
	ir := itemrepo.New(db)
	br := bookingrepo.New(db)
	nr := notificationrepo.New(db)
	wr := walletrepo.New(db)

	var gw gatewayrepo.Repo
	if base := os.Getenv("PAYMENT_GATEWAY_URL"); base != "" {
		gw = gatewayrepo.NewHTTP(base, os.Getenv("PAYMENT_GATEWAY_API_KEY"))
	} else {
		gw = gatewayrepo.NewSimulated()
	}

	// services
	as := authsvc.New(ar, cfg.JWTSecret)
	is := itemsvc.New(ir, cfg.ListingFee)
	bs := bookingsvc.New(br, ir)
	ps := paymentsvc.New(wr, gw)
	ns := notificationsvc.New(nr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	itemC := &itemctrl.Controller{Svc: is, V: v, Log: log}
	bookingC := &bookingctrl.Controller{Svc: bs, V: v, Log: log}
	paymentC := &paymentctrl.Controller{Svc: ps, V: v, Log: log}
	notifC := &notifctrl.Controller{Svc: ns, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:         authC,
		Item:         itemC,
		Booking:      bookingC,
		Payment:      paymentC,
		Notification: notifC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
