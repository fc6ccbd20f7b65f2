package middleware

import (
	"errors"
	"strings"
	"sync"

	"bakery-shop/models"

	"github.com/creasty/defaults"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

const (
	ProductQueryKey = "product_query"
	RequestBodyKey  = "request_body"
)

var (
	registerOnce sync.Once
	queryDecoder = newQueryDecoder()
)

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

func oneOfFold(allowed ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := strings.TrimSpace(fl.Field().String())
		for _, a := range allowed {
			if strings.EqualFold(value, a) {
				return true
			}
		}
		return false
	}
}

// RegisterValidators adds the sortkey and direction tags to gin's validator.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("sortkey", oneOfFold("name", "price"))
		_ = v.RegisterValidation("direction", oneOfFold("asc", "desc"))
	})
}

// ValidateProductQuery decodes and checks the /products query string and
// stores the normalized models.ProductQuery under ProductQueryKey. Invalid
// queries never reach the handler.
func ValidateProductQuery() gin.HandlerFunc {
	RegisterValidators()

	return func(c *gin.Context) {
		var q models.ProductQuery
		if err := queryDecoder.Decode(&q, c.Request.URL.Query()); err != nil {
			Fail(c, models.ErrInvalidQuery)
			return
		}
		if err := defaults.Set(&q); err != nil {
			Fail(c, err)
			return
		}
		if err := binding.Validator.ValidateStruct(&q); err != nil {
			Fail(c, models.ErrInvalidQuery)
			return
		}

		q.Normalize()
		c.Set(ProductQueryKey, q)
		c.Next()
	}
}

// BindBody binds a JSON or form body into a new T and stores it under
// RequestBodyKey.
func BindBody[T any]() gin.HandlerFunc {
	RegisterValidators()

	return func(c *gin.Context) {
		var body T
		if err := c.ShouldBind(&body); err != nil {
			Fail(c, bindError(err))
			return
		}
		c.Set(RequestBodyKey, body)
		c.Next()
	}
}

func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return models.ErrMissingFields
			}
		}
		for _, fe := range verrs {
			if fe.Field() == "Email" {
				return models.ErrInvalidEmail
			}
		}
	}
	return models.ErrMissingFields
}
