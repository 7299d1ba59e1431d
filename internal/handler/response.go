// Package handler HTTP 接入层
// 负责参数绑定、取认证上下文、调用 Service 并统一封装响应
package handler

import (
	"errors"
	"net/http"

	"bookswap_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: errorx.CodeSuccess,
		Msg:  "success",
		Data: data,
	})
}

// Fail 失败响应
// 业务错误码透传给前端，HTTP 状态码按错误类别映射
func Fail(c *gin.Context, err error) {
	code := errorx.GetCode(err)
	msg := "服务繁忙"
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		msg = codeErr.Msg
	}

	// 服务端错误只记日志，对外隐藏细节
	if code == errorx.CodeServerBusy || code == errorx.CodeDBError || code == errorx.CodeCacheError {
		zap.L().Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		msg = "服务繁忙"
	}

	c.JSON(httpStatus(code), Response{Code: code, Msg: msg})
}

// FailBind 参数绑定失败响应
// validator 校验错误翻译后返回，其余按参数错误处理
func FailBind(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, Response{
			Code: errorx.CodeInvalidParam,
			Msg:  "请求参数错误",
			Data: removeTopStruct(validationErrs.Translate(translator)),
		})
		return
	}
	c.JSON(http.StatusBadRequest, Response{
		Code: errorx.CodeInvalidParam,
		Msg:  "请求参数错误",
	})
}

// httpStatus 业务错误码到 HTTP 状态码的映射
func httpStatus(code int) int {
	switch code {
	case errorx.CodeUnauthorized:
		return http.StatusUnauthorized
	case errorx.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case errorx.CodeNotFound:
		return http.StatusNotFound
	case errorx.CodeNotAllowed:
		return http.StatusForbidden
	case errorx.CodeServerBusy, errorx.CodeDBError, errorx.CodeCacheError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
