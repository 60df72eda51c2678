package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all given errors into a single error instance.
// Nil errors are ignored and multi errors are flattened, so that the result
// always is a single level list. It returns nil when there is no error to
// report and the error itself when there is only one.
//
// Use it to collect all validation failures instead of returning only the
// first one.
func Append(errs ...error) error {
	var res multiErr
	for _, err := range errs {
		if isNilErr(err) {
			continue
		}
		if m, ok := err.(multiErr); ok {
			res = append(res, m...)
		} else {
			res = append(res, err)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiErr is a list of errors. Its ABCI code is the code of the first
// error, so a client always gets the code of the first failed check.
type multiErr []error

var _ unpacker = multiErr(nil)
var _ coder = multiErr(nil)

func (m multiErr) Error() string {
	points := make([]string, len(m))
	for i, err := range m {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n", len(m), strings.Join(points, "\n\t"))
}

// Format prints the full representation of every contained error when
// formatted with %+v.
func (m multiErr) Format(s fmt.State, verb rune) {
	if verb != 'v' || !s.Flag('+') {
		fmt.Fprint(s, m.Error())
		return
	}
	fmt.Fprintf(s, "%d errors occurred:", len(m))
	for _, err := range m {
		fmt.Fprintf(s, "\n\t* %+v", err)
	}
	fmt.Fprint(s, "\n")
}

// Unpack returns all contained errors.
func (m multiErr) Unpack() []error {
	return m
}

// ABCICode implements the coder interface.
func (m multiErr) ABCICode() uint32 {
	if len(m) == 0 {
		return SuccessABCICode
	}
	return abciCode(m[0])
}

// unpacker is implemented by errors that are a collection of errors.
type unpacker interface {
	Unpack() []error
}
