package app

import (
	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
)

// ResultsFromKeys returns a ResultSet of all keys given a set of models.
func ResultsFromKeys(models []batchpay.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values given a set of models.
func ResultsFromValues(models []batchpay.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues.
func JoinResults(keys, values *ResultSet) ([]batchpay.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrapf(errors.ErrInput, "%d keys and %d values", len(kref), len(vref))
	}
	mods := make([]batchpay.Model, len(kref))
	for i := range mods {
		mods[i] = batchpay.Model{
			Key:   kref[i],
			Value: vref[i],
		}
	}
	return mods, nil
}

// UnmarshalOneResult parses a serialized result set and, if it is not empty,
// unmarshals the first result into dst.
func UnmarshalOneResult(raw []byte, dst batchpay.Persistent) error {
	var res ResultSet
	if err := res.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrInput, "result set: %s", err)
	}
	if len(res.Results) == 0 {
		return nil
	}
	if err := dst.Unmarshal(res.Results[0]); err != nil {
		return errors.Wrapf(errors.ErrModel, "result: %s", err)
	}
	return nil
}
