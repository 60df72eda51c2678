package batchpay

import (
	"testing"

	"github.com/iov-one/batchpay/errors"
	"github.com/stretchr/testify/assert"
)

type demoMsg struct {
	Num int
	Err error
}

func (demoMsg) Path() string             { return "demo/msg" }
func (m demoMsg) Validate() error        { return m.Err }
func (demoMsg) Marshal() ([]byte, error) { return []byte("demo"), nil }
func (*demoMsg) Unmarshal([]byte) error  { return nil }

type demoTx struct {
	msg Msg
	err error
}

func (tx *demoTx) GetMsg() (Msg, error)  { return tx.msg, tx.err }
func (*demoTx) Marshal() ([]byte, error) { return nil, errors.ErrHuman.New("not implemented") }
func (*demoTx) Unmarshal([]byte) error   { return errors.ErrHuman.New("not implemented") }

type container struct {
	Data *demoMsg
}

type bigContainer struct {
	Data   *demoMsg
	Random string
}

type badContents struct {
	Data *container
}

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      Tx
		dest    interface{}
		wantErr *errors.Error
		wantNum int
	}{
		"valid message": {
			tx:      &demoTx{msg: &demoMsg{Num: 5}},
			dest:    &demoMsg{},
			wantNum: 5,
		},
		"invalid message": {
			tx:      &demoTx{msg: &demoMsg{Err: errors.ErrAmount.New("bad")}},
			dest:    &demoMsg{},
			wantErr: errors.ErrAmount,
		},
		"missing message": {
			tx:      &demoTx{},
			dest:    &demoMsg{},
			wantErr: errors.ErrInput,
		},
		"transaction error": {
			tx:      &demoTx{err: errors.ErrState.New("broken")},
			dest:    &demoMsg{},
			wantErr: errors.ErrState,
		},
		"not a pointer": {
			tx:      &demoTx{msg: &demoMsg{}},
			dest:    demoMsg{},
			wantErr: errors.ErrType,
		},
		"wrong type": {
			tx:      &demoTx{msg: &demoMsg{}},
			dest:    new(int),
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := LoadMsg(tc.tx, tc.dest)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "got %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantNum, tc.dest.(*demoMsg).Num)
		})
	}
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "demo/msg", GetPath(&demoTx{msg: &demoMsg{}}))
	assert.Equal(t, "(missing)", GetPath(&demoTx{}))
}

func TestExtractMsgFromSum(t *testing.T) {
	cases := map[string]struct {
		input   interface{}
		wantErr *errors.Error
	}{
		"success": {
			input: &container{&demoMsg{Num: 17}},
		},
		"nil input is not allowed": {
			input:   nil,
			wantErr: errors.ErrInput,
		},
		"number is not a container": {
			input:   7,
			wantErr: errors.ErrInput,
		},
		"empty container": {
			input:   &container{},
			wantErr: errors.ErrState,
		},
		"container must be a pointer": {
			input:   container{&demoMsg{}},
			wantErr: errors.ErrInput,
		},
		"wrong number of fields": {
			input:   &bigContainer{&demoMsg{}, "foo"},
			wantErr: errors.ErrInput,
		},
		"content is not a message": {
			input:   &badContents{&container{}},
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg, err := ExtractMsgFromSum(tc.input)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "got %v", err)
				assert.Nil(t, msg)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "demo/msg", msg.Path())
		})
	}
}
