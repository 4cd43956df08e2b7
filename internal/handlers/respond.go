package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/realista-backend/internal/results"
)

func statusCode(s results.Status) int {
	switch s {
	case results.StatusOk:
		return http.StatusOK
	case results.StatusCreated:
		return http.StatusCreated
	case results.StatusNotFound:
		return http.StatusNotFound
	case results.StatusInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

func respond[T any](c *gin.Context, res results.Result[T]) {
	c.JSON(statusCode(res.Status), res)
}

func respondPaged[T any](c *gin.Context, res results.Paged[T]) {
	c.JSON(statusCode(res.Status), res)
}

// respondBadBody is the envelope for a request body that did not bind.
func respondBadBody[T any](c *gin.Context) {
	respond(c, results.Invalid[T]([]results.FieldError{
		{Field: "body", Message: "malformed request body"},
	}))
}
