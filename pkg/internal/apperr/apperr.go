// Package apperr 定义服务层统一的错误分类。handle 层据此映射 HTTP 状态码，
// 服务与仓库层不直接感知 HTTP.
package apperr

import (
	"errors"
	"fmt"
)

// Kind 错误类别，封闭集合.
type Kind int

const (
	// KindInternal 未分类的内部错误.
	KindInternal Kind = iota
	// KindValidation 请求参数或上传内容不合法.
	KindValidation
	// KindProcessing 图片解码/变换失败.
	KindProcessing
	// KindUnauthenticated 未认证或凭证无效.
	KindUnauthenticated
	// KindForbidden 家族内权限不足.
	KindForbidden
	// KindNotFound 资源不存在（含跨家族访问的遮蔽）.
	KindNotFound
	// KindConflict 资源冲突，如重名分类.
	KindConflict
	// KindInvalidState 生命周期状态迁移非法.
	KindInvalidState
	// KindStorage 底层存储失败.
	KindStorage
)

// String 返回类别名.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindProcessing:
		return "processing"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidState:
		return "invalid_state"
	case KindStorage:
		return "storage"
	default:
		return "internal"
	}
}

// Error 带类别的错误.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error 实现 error 接口.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap 返回底层错误.
func (e *Error) Unwrap() error { return e.Err }

// New 创建指定类别的错误.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf 创建指定类别的格式化错误.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap 包装底层错误并附加类别.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf 提取错误类别；非 *Error 一律视为内部错误.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindInternal
}

// Is 判断错误是否属于某类别.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Validation 参数校验错误.
func Validation(message string) *Error { return New(KindValidation, message) }

// Unauthenticated 未认证错误.
func Unauthenticated(message string) *Error { return New(KindUnauthenticated, message) }

// Forbidden 权限不足错误.
func Forbidden(message string) *Error { return New(KindForbidden, message) }

// NotFound 资源不存在错误.
func NotFound(message string) *Error { return New(KindNotFound, message) }

// Conflict 资源冲突错误.
func Conflict(message string) *Error { return New(KindConflict, message) }

// InvalidState 状态迁移非法错误.
func InvalidState(message string) *Error { return New(KindInvalidState, message) }
