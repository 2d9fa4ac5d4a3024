package config

type App struct {
	Port           string  `env:"APP_PORT" default:"8080"`
	DatabaseURL    string  `env:"DATABASE_URL,required"`
	JWTSecret      string  `env:"JWT_SECRET,required"`
	ListingFee     float64 `env:"LISTING_FEE" default:"0"`
	PlatformFeePct float64 `env:"PLATFORM_FEE_PERCENTAGE" default:"5"`
	Env            string  `env:"APP_ENV" default:"dev"`
}
