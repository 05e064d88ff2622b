package api

import (
	"fmt"
	"net/http"

	"github.com/Domenick1991/airportdesk/docs"
	"github.com/Domenick1991/airportdesk/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Airports *AirportHandler
	Flights  *FlightHandler
	Bookings *BookingHandler
}

type RouterOption func(*gin.Engine)

// WithSwagger serves the OpenAPI document and a Swagger UI over it.
func WithSwagger() RouterOption {
	return func(r *gin.Engine) {
		r.GET("/docs/openapi.json", func(c *gin.Context) {
			c.Data(http.StatusOK, "application/json", docs.OpenAPI)
		})
		r.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/docs/openapi.json"))))
	}
}

// WithHealth mounts h on GET /healthz.
func WithHealth(h http.Handler) RouterOption {
	return func(r *gin.Engine) {
		r.GET("/healthz", gin.WrapH(h))
	}
}

func NewRouter(h Handlers, opts ...RouterOption) (*gin.Engine, error) {
	if err := RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())

	h.Airports.Register(&r.RouterGroup)
	h.Flights.Register(&r.RouterGroup)
	h.Bookings.Register(&r.RouterGroup)

	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// RegisterValidators adds the "city" rule to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("city", func(fl validator.FieldLevel) bool {
		c, ok := fl.Field().Interface().(domain.City)
		return ok && c.Valid()
	})
}
