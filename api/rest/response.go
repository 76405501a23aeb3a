package rest

import (
	"github.com/gofiber/fiber/v2"
)

// Response 统一响应结构
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// 响应码定义
const (
	CodeSuccess      = 0
	CodeBadRequest   = 400
	CodeInvalidInput = 422
	CodeServerError  = 500
)

// 响应消息定义
const (
	MsgSuccess      = "success"
	MsgBadRequest   = "invalid request body"
	MsgInvalidInput = "invalid input"
	MsgServerError  = "server error"
)

// Success 成功响应
func Success(c *fiber.Ctx, data any) error {
	return c.JSON(Response{
		Code:    CodeSuccess,
		Message: MsgSuccess,
		Data:    data,
	})
}

// BadRequest 请求体无法解析
func BadRequest(c *fiber.Ctx, message string) error {
	if message == "" {
		message = MsgBadRequest
	}
	return c.Status(fiber.StatusBadRequest).JSON(Response{
		Code:    CodeBadRequest,
		Message: message,
	})
}

// InvalidInput 表达式求值失败
func InvalidInput(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(Response{
		Code:    CodeInvalidInput,
		Message: MsgInvalidInput,
		Data:    data,
	})
}
