package errorx

import "errors"

// 定义业务错误
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrEmptyInput        = errors.New("no expiring products found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidCadence    = errors.New("invalid cadence config")
	ErrCapacityViolation = errors.New("alert history capacity violated") // 内部断言类错误（预留）
)

// BusinessError 业务错误结构
type BusinessError struct {
	Code    int
	Message string
	Details []ErrorDetail
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Path string
	Info string
}

// Error 实现 error 接口
func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError 创建业务错误
func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}
