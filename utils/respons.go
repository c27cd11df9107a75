package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Kind    string      `json:"kind,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondError derives the HTTP status from the error kind so handlers never
// pick codes by hand.
func RespondError(c *gin.Context, err error) {
	c.JSON(HTTPStatus(err), JSONResponse{
		Status:  false,
		Kind:    string(KindOf(err)),
		Message: err.Error(),
	})
}
