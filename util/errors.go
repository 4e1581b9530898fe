package util

import (
	"github.com/pkg/errors"
)

// Error kinds shared by every package of the module. Call sites wrap one of
// these with context, so callers match on the kind with errors.Is.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrFailedPrecondition = errors.New("failed precondition")
	ErrKeyValidity        = errors.New("key not valid at time of use")
	ErrInternal           = errors.New("internal error")
	ErrUnimplemented      = errors.New("unimplemented")
)

func InvalidArgumentf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func FailedPreconditionf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrFailedPrecondition, format, args...)
}

func KeyValidityf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrKeyValidity, format, args...)
}

func Internalf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInternal, format, args...)
}

func Unimplementedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnimplemented, format, args...)
}
