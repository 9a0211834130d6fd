package errorutil

import (
	"errors"
	"fmt"

	"github.com/tidwall/sjson"
)

const (
	CodeSuccess = 0 // 成功

	// 60–69: 调用方错误（违反前置条件）
	CodeIndexOutOfRange = 64 // 元素下标不在 [0, n) 范围内
	CodeInvalidCount    = 65 // 元素个数非法（负数、快照长度不一致等）
	CodeInvalidGraph    = 66 // DOT 图无法解析或结构非法
	CodeInvalidForest   = 67 // 快照中的父指针不是森林，或者大小、集合数不一致

	// 70–79: 内部错误
	CodeRenderFailed = 70 // 视图渲染失败
	CodeInternalErr  = 74 // 内部 bug
)

// 预定义的哨兵错误，配合 errors.Is 按错误码匹配
var (
	ErrIndexOutOfRange = &CodedError{Code: CodeIndexOutOfRange}
	ErrInvalidCount    = &CodedError{Code: CodeInvalidCount}
	ErrInvalidGraph    = &CodedError{Code: CodeInvalidGraph}
	ErrInvalidForest   = &CodedError{Code: CodeInvalidForest}
)

// CodedError 带错误码的错误
type CodedError struct {
	Code    int    // 错误码
	Message string // 可读消息
	Err     error  // 原始错误，可以为空
}

func (e *CodedError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return fmt.Sprintf("error code: %d", e.Code)
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// Is 只比较错误码，这样 errors.Is(err, ErrIndexOutOfRange) 可以直接使用
func (e *CodedError) Is(target error) bool {
	t, ok := target.(*CodedError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// JSON 序列化为一行 JSON，空字段不输出
func (e *CodedError) JSON() string {
	out, _ := sjson.Set("", "code", e.Code)
	if e.Message != "" {
		out, _ = sjson.Set(out, "message", e.Message)
	}
	if e.Err != nil {
		out, _ = sjson.Set(out, "error", e.Err.Error())
	}
	return out
}

func New(code int, format string, args ...any) error {
	return &CodedError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap 包装原始错误，err 为空时等价于 New
func Wrap(code int, err error, format string, args ...any) error {
	return &CodedError{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf 提取错误码，nil 返回 CodeSuccess，普通错误返回 CodeInternalErr
func CodeOf(err error) int {
	if err == nil {
		return CodeSuccess
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return CodeInternalErr
}

// 判断当前错误链上是否有带错误码的错误
func HasCode(err error) bool {
	var ce *CodedError
	return errors.As(err, &ce)
}

// Message 返回错误链上第一个 CodedError 的可读消息
func Message(err error) string {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return ""
}

// 提取原始错误
func RootError(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
