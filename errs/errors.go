package errs

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type ErrType string

const (
	INTERNAL_ERROR  ErrType = "INTERNAL ERROR"
	BAD_INPUT_ERROR ErrType = "BAD INPUT ERROR"
	UNKNOWN_ERROR   ErrType = "UNKNOWN ERROR"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

// 内部的なエラー
// カウンタのオーバーフローなど、REPLを止めずに報告すべき失敗を表す
type InternalError struct {
	message string
	wrapped error
}

func NewInternalError(message string) *InternalError {
	return &InternalError{
		message: message,
	}
}

func (e *InternalError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *InternalError) Unwrap() error {
	return e.wrapped
}

func (e *InternalError) Error() string {
	if e.wrapped == nil {
		return e.message
	}
	return e.message + ": " + e.wrapped.Error()
}

// ユーザー起因の無効な入力エラー
type BadInputError struct {
	message string
	wrapped error
}

func NewBadInputError(message string) *BadInputError {
	return &BadInputError{
		message: message,
	}
}

func (e *BadInputError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *BadInputError) Unwrap() error {
	return e.wrapped
}

func (e *BadInputError) Error() string {
	if e.wrapped == nil {
		return e.message
	}
	return e.message + ": " + e.wrapped.Error()
}

// Classify はエラーの種類を判定する
func Classify(err error) ErrType {
	var internalErr *InternalError
	var badInputErr *BadInputError
	switch {
	case errors.As(err, &internalErr):
		return INTERNAL_ERROR
	case errors.As(err, &badInputErr):
		return BAD_INPUT_ERROR
	default:
		return UNKNOWN_ERROR
	}
}

// HandleError はエラーを種類付きで標準出力に表示する
func HandleError(err error) {
	msg := fmt.Sprintf("[%s]\n %s", Classify(err), err.Error())
	fmt.Printf("\n%s\n\n", errStyle.Render(msg))
}
