package errors

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestAppend(t *testing.T) {
	cases := map[string]struct {
		Errs []error
		Want error
	}{
		"nothing": {
			Errs: nil,
			Want: nil,
		},
		"only nil errors": {
			Errs: []error{nil, (*Error)(nil), nil},
			Want: nil,
		},
		"a single error is returned as it is": {
			Errs: []error{nil, ErrNotFound, nil},
			Want: ErrNotFound,
		},
		"two errors": {
			Errs: []error{ErrNotFound, ErrMsg},
			Want: multiErr{ErrNotFound, ErrMsg},
		},
		"duplicates are kept": {
			Errs: []error{ErrNotFound, ErrNotFound},
			Want: multiErr{ErrNotFound, ErrNotFound},
		},
		"multi errors are flattened": {
			Errs: []error{Append(ErrNotFound, ErrMsg), ErrEmpty},
			Want: multiErr{ErrNotFound, ErrMsg, ErrEmpty},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := Append(tc.Errs...); !reflect.DeepEqual(tc.Want, got) {
				t.Fatalf("want %#v, got %#v", tc.Want, got)
			}
		})
	}
}

func TestMultiErrIs(t *testing.T) {
	err := Wrap(Append(ErrEmpty, Field("Amount", ErrAmount, "negative")), "validate")

	for _, kind := range []*Error{ErrEmpty, ErrAmount} {
		if !kind.Is(err) {
			t.Errorf("%q must be found", kind)
		}
	}
	if ErrNotFound.Is(err) {
		t.Error("not found must not match")
	}
}

func TestMultiErrABCI(t *testing.T) {
	err := Append(Field("Sender", ErrEmpty, ""), Field("FeeRate", ErrAmount, ""))

	code, log := ABCIInfo(err, false)
	if code != ErrEmpty.ABCICode() {
		t.Errorf("want the first error code %d, got %d", ErrEmpty.ABCICode(), code)
	}
	for _, want := range []string{"2 errors occurred", `field "Sender"`, `field "FeeRate"`} {
		if !strings.Contains(log, want) {
			t.Errorf("%q not found in %q", want, log)
		}
	}

	if code, _ := ABCIInfo(Append(io.EOF, ErrEmpty), false); code != internalABCICode {
		t.Errorf("an unregistered first error must give the internal code, got %d", code)
	}
	if got := fmt.Sprintf("%+v", err); !strings.Contains(got, "2 errors occurred") {
		t.Errorf("unexpected verbose format: %s", got)
	}
}
