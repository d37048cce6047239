package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the standardized API response envelope.
// The body carries no per-request values; the request id is only sent as the
// X-Request-ID header, so identical failures produce identical bytes.
type Response struct {
	Data  interface{} `json:"data"`
	Error *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody represents a structured error response.
type ErrorBody struct {
	Code    ErrCode           `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success sends a successful JSON response with the given status code and data.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{Data: data})
}

// Created sends 201 with the stored entity.
func Created(c *gin.Context, data interface{}) {
	Success(c, http.StatusCreated, data)
}

// Message sends 200 with a {"message": msg} payload.
func Message(c *gin.Context, msg string) {
	Success(c, http.StatusOK, gin.H{"message": msg})
}

// Fail sends an error response with an error code and no field-level details.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, errorResponse(code, nil))
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, errorResponse(code, fields))
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, errorResponse(code, nil))
}

func errorResponse(code ErrCode, fields map[string]string) Response {
	return Response{
		Data:  nil,
		Error: &ErrorBody{Code: code, Message: GetMessage(code), Fields: fields},
	}
}
