package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	authctrl "github.com/mustafidulibadahmad-commits/komunitas-berbagi/app/echoServer/controller/auth"
	bookingctrl "github.com/mustafidulibadahmad-commits/komunitas-berbagi/app/echoServer/controller/booking"
	itemctrl "github.com/mustafidulibadahmad-commits/komunitas-berbagi/app/echoServer/controller/item"
	notifctrl "github.com/mustafidulibadahmad-commits/komunitas-berbagi/app/echoServer/controller/notification"
	paymentctrl "github.com/mustafidulibadahmad-commits/komunitas-berbagi/app/echoServer/controller/payment"
	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/app/echoServer/jwtx"
)

type C struct {
	Auth         *authctrl.Controller
	Item         *itemctrl.Controller
	Booking      *bookingctrl.Controller
	Payment      *paymentctrl.Controller
	Notification *notifctrl.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/auth/register", c.Auth.Register)
	pub.POST("/auth/login", c.Auth.Login)
	pub.GET("/items", c.Item.List)
	pub.GET("/items/:id", c.Item.Detail)

	// Auth
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	// user_id extraction from verified claims
	auth.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			uid, err := jwtx.UserIDFromContext(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("user_id", uid)
			return next(ctx)
		}
	})

	// Items
	auth.POST("/items", c.Item.Create)
	auth.PUT("/items/:id", c.Item.Update)
	auth.DELETE("/items/:id", c.Item.Delete)
	auth.GET("/items/my", c.Item.My)

	// Bookings
	auth.POST("/bookings", c.Booking.Create)
	auth.GET("/bookings", c.Booking.List)
	auth.POST("/bookings/:id/approve", c.Booking.Approve)
	auth.POST("/bookings/:id/reject", c.Booking.Reject)
	auth.POST("/bookings/:id/return", c.Booking.Return)

	// Payments & wallet
	auth.POST("/payments/create", c.Payment.Create)
	auth.GET("/payments/wallet", c.Payment.Wallet)
	auth.GET("/payments/transactions", c.Payment.Transactions)

	// Notifications
	auth.GET("/notifications", c.Notification.List)
	auth.POST("/notifications/:id/read", c.Notification.MarkRead)
}
