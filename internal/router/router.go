package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"realtor/internal/config"
	"realtor/internal/handler"
	"realtor/internal/model"
	"realtor/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userService service.UserService,
	authHandler *handler.AuthHandler,
	homeHandler *handler.HomeHandler,
	userHandler *handler.UserHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup/:userType", authHandler.Signup)
	api.POST("/auth/signin", authHandler.Signin)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/homes", homeHandler.GetHomes)
	api.GET("/homes/:id", homeHandler.GetHome)
	api.GET("/homes/:id/realtor", homeHandler.GetRealtor)
	api.GET("/seed/demo", seedHandler.SeedDemo)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", userHandler.Me)

	// Realtor routes; ownership of the listing is checked in the handler.
	realtors := secured.Group("", RequireUserType(userService, model.UserTypeRealtor, model.UserTypeAdmin))
	realtors.POST("/homes", homeHandler.CreateHome)
	realtors.PUT("/homes/:id", homeHandler.UpdateHome)
	realtors.DELETE("/homes/:id", homeHandler.DeleteHome)
	realtors.GET("/homes/:id/messages", homeHandler.GetHomeMessages)

	// Buyer routes
	buyers := secured.Group("", RequireUserType(userService, model.UserTypeBuyer))
	buyers.POST("/homes/:id/inquire", homeHandler.Inquire)

	// Admin routes
	admins := secured.Group("", RequireUserType(userService, model.UserTypeAdmin))
	admins.POST("/auth/key", authHandler.GenerateProductKey)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
