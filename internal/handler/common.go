package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindJSON binds and validates a JSON body, answering 422 with per-field
// detail on failure.
func BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Invalid request body",
			"detail": validationDetail(err),
		})
		return err
	}
	return nil
}

// BindQuery binds and validates query parameters with the same 422 shape.
func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Invalid query parameters",
			"detail": validationDetail(err),
		})
		return err
	}
	return nil
}

func validationDetail(err error) []gin.H {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		detail := make([]gin.H, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			detail = append(detail, gin.H{
				"field": fe.Field(),
				"rule":  fe.Tag(),
			})
		}
		return detail
	}
	return []gin.H{{"message": err.Error()}}
}
