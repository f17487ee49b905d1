package errors

import (
	"runtime"

	errorsGo "github.com/go-errors/errors"

	"github.com/srlehn/ninepatch/internal/consts"
)

func As(err error, target any) bool { return errorsGo.As(err, target) }

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func Join(errs ...error) error {
	// not implemented by github.com/go-errors/errors
	if err := errorsGo.Join(errs...); err != nil {
		if errGo, okErrGo := err.(*errorsGo.Error); okErrGo {
			return errGo
		}
		return errorsGo.Wrap(err, 1)
	}
	return nil
}

func New(obj any) *Error {
	// return nil for nil unlike github.com/go-errors/errors.New()
	if obj == nil {
		return nil
	}
	// don't overwrite origin of failure
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

type Error = errorsGo.Error

func Errorf(format string, a ...interface{}) *Error { return errorsGo.Errorf(format, a...) }

func Wrap(e interface{}, skip int) *Error { return errorsGo.Wrap(e, skip+1) }

func WrapPrefix(e interface{}, prefix string, skip int) *Error {
	return errorsGo.WrapPrefix(e, prefix, skip)
}

// NilReceiver returns an error with the function name if any of the arguments are nil
func NilReceiver(args ...any) error {
	return errMsgNilTester(`nil receiver or struct field`, 3, args...)
}

// NilParam returns an error with the function name if any of the arguments are nil
func NilParam(args ...any) error {
	return errMsgNilTester(`nil parameter`, 3, args...)
}

func errMsgNilTester(msg string, skip int, args ...any) error {
	for i := range args {
		if args[i] == nil {
			goto anyNil
		}
	}
	if len(args) > 0 {
		return nil
	}
anyNil:
	return errMsg(msg, skip)
}

func errMsg(msg string, skip int) error {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return Wrap(msg, skip)
	}
	return Wrap(msg+`: `+runtime.FuncForPC(pc).Name()+`()`, skip)
}

////////////////////////////////////////////////////////////////////////////////

// NotNinePatchError is returned when an image lacks stretch guides on an axis.
type NotNinePatchError struct {
	Axis   string // "horizontal" or "vertical", empty if the image is too small
	Reason string
}

func (e *NotNinePatchError) Error() string {
	msg := consts.ErrNotNinePatch.Error()
	if len(e.Axis) > 0 {
		msg += `: no ` + e.Axis + ` stretch markers`
	}
	if len(e.Reason) > 0 {
		msg += `: ` + e.Reason
	}
	return msg
}

func (e *NotNinePatchError) Is(target error) bool { return target == consts.ErrNotNinePatch }

// NotNinePatch wraps a *NotNinePatchError with a stack trace.
func NotNinePatch(axis, reason string) *Error {
	return errorsGo.Wrap(&NotNinePatchError{Axis: axis, Reason: reason}, 1)
}

// UnresolvedAssetError is returned when no file matches a logical asset name.
type UnresolvedAssetError struct {
	Name  string
	State string
}

func (e *UnresolvedAssetError) Error() string {
	msg := consts.ErrUnresolvedAsset.Error() + `: "` + e.Name + `"`
	if len(e.State) > 0 {
		msg += ` (state: ` + e.State + `)`
	}
	return msg
}

func (e *UnresolvedAssetError) Is(target error) bool { return target == consts.ErrUnresolvedAsset }

// UnresolvedAsset wraps an *UnresolvedAssetError with a stack trace.
func UnresolvedAsset(name, state string) *Error {
	return errorsGo.Wrap(&UnresolvedAssetError{Name: name, State: state}, 1)
}
