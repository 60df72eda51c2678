package errors

import (
	"reflect"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	// Declared upfront so that DeepEqual can be used for comparison.
	var (
		unauthorizedSenderErr = Field("Sender", ErrUnauthorized, "a")
		emptySenderErr        = Field("Sender", ErrEmpty, "b")
		feeRateErr            = Field("FeeRate", ErrAmount, "fee rate out of range")
		configErr             = Field("Config", Append(
			emptySenderErr,
			Append(feeRateErr, ErrState),
		), "configuration invalid")

		feeRateWrapErr = Field("FeeRate", feeRateErr, "outer")
	)

	cases := map[string]struct {
		Err   error
		Field string
		Want  []error
	}{
		"a single error found by the name": {
			Err:   unauthorizedSenderErr,
			Field: "Sender",
			Want:  []error{unauthorizedSenderErr},
		},
		"two errors found by the name": {
			Err:   Append(unauthorizedSenderErr, emptySenderErr),
			Field: "Sender",
			Want:  []error{unauthorizedSenderErr, emptySenderErr},
		},
		"field can contain a multi error": {
			Err:   configErr,
			Field: "Config",
			Want:  []error{configErr},
		},
		"field inspects the errors tree (Sender)": {
			Err:   configErr,
			Field: "Sender",
			Want:  []error{emptySenderErr},
		},
		"field inspects the errors tree (FeeRate)": {
			Err:   configErr,
			Field: "FeeRate",
			Want:  []error{feeRateErr},
		},
		"nil error returns nothing": {
			Err:   nil,
			Field: "Sender",
			Want:  nil,
		},
		"error without a field": {
			Err:   ErrUnauthorized,
			Field: "Sender",
			Want:  nil,
		},
		"wrong field name": {
			Err:   Field("Recipients.0.Amount", ErrAmount, "negative"),
			Field: "Sender",
			Want:  nil,
		},
		"field is wrapped": {
			Err:   Wrap(Wrap(emptySenderErr, "inner"), "outer"),
			Field: "Sender",
			Want:  []error{emptySenderErr},
		},
		"wrapped multi error": {
			Err:   Wrap(Wrap(configErr, "inner"), "outer"),
			Field: "FeeRate",
			Want:  []error{feeRateErr},
		},
		"wrapped multi error, no match": {
			Err:   Wrap(configErr, "outer"),
			Field: "BankAccount",
			Want:  nil,
		},
		"the same field wrapped twice returns the most outside only": {
			Err:   feeRateWrapErr,
			Field: "FeeRate",
			Want:  []error{feeRateWrapErr},
		},
		"complex error with multiple results": {
			Err: Wrap(Append(
				Wrap(unauthorizedSenderErr, "a"),
				Wrap(emptySenderErr, "b"),
				Wrap(feeRateErr, "c"),
			), "outer"),
			Field: "Sender",
			Want:  []error{unauthorizedSenderErr, emptySenderErr},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := FieldErrors(tc.Err, tc.Field)
			if !reflect.DeepEqual(tc.Want, got) {
				t.Logf("want: %#v", tc.Want)
				t.Logf(" got: %#v", got)
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestFieldErrorMessage(t *testing.T) {
	if err := Field("Sender", nil, "ignored"); err != nil {
		t.Fatalf("nil error must stay nil, got %v", err)
	}
	err := Field("FeeRate", ErrAmount, "must be below %d", 10000)
	if want := `field "FeeRate": must be below 10000: invalid amount`; err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
	if !ErrAmount.Is(err) {
		t.Fatal("field error must keep its kind")
	}
	if got := AppendField(nil, "Sender", ErrEmpty).Error(); got != `field "Sender": value is empty` {
		t.Fatalf("unexpected message: %q", got)
	}
}
