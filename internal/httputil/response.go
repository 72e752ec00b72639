// Package httputil contains the response envelope, request binding and
// pagination helpers shared by all controllers.
package httputil

import (
	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Exito   bool    `json:"exito"`             // Whether the request succeeded
	Datos   any     `json:"datos,omitempty"`   // The payload, if any
	Error   *string `json:"error,omitempty"`   // The error, if any occurred
	Mensaje string  `json:"mensaje,omitempty"` // A human readable message
}

// Success writes a success envelope with the given status code.
func Success(c *gin.Context, status int, datos any, mensaje string) {
	c.JSON(status, gin.H{
		"exito":   true,
		"datos":   datos,
		"mensaje": mensaje,
	})
}

// SuccessList writes a success envelope with additional top-level
// fields such as pagination metadata or list statistics.
func SuccessList(c *gin.Context, status int, datos any, extra gin.H) {
	body := gin.H{
		"exito": true,
		"datos": datos,
	}
	for key, value := range extra {
		body[key] = value
	}

	c.JSON(status, body)
}

// Error writes an error envelope with the given status code.
func Error(c *gin.Context, status int, err string) {
	c.JSON(status, gin.H{
		"exito": false,
		"error": err,
	})
}
