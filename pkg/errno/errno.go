package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode       = 0
	ServiceErrCode    = 10001
	ParamErrCode      = 10002
	NotFoundErrCode   = 10003
	AuthorizationCode = 10004
	MysqlErrCode      = 10005
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

// WithMessage keeps the code and replaces the message.
func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success          = NewErrNo(SuccessCode, "Success")
	ServiceErr       = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr         = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	NotFoundErr      = NewErrNo(NotFoundErrCode, "Record not found")
	AuthorizationErr = NewErrNo(AuthorizationCode, "No permission to operate")
	MysqlErr         = NewErrNo(MysqlErrCode, "Mysql operation failed")
)

// ConvertErr converts any error to an ErrNo. A wrapped ErrNo keeps its code,
// anything else becomes a ServiceErr carrying the original message.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}

// Is reports whether err carries the given kind's code, through wrapping.
func Is(err error, kind ErrNo) bool {
	return ConvertErr(err).ErrCode == kind.ErrCode
}
