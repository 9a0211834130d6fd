package errorutil

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestCodedErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *CodedError
		want string
	}{
		{"message only", &CodedError{Code: CodeIndexOutOfRange, Message: "index 9 out of range"}, "index 9 out of range"},
		{"wrapped", &CodedError{Code: CodeInvalidGraph, Message: "parse dot", Err: io.ErrUnexpectedEOF}, "parse dot: unexpected EOF"},
		{"error only", &CodedError{Code: CodeInternalErr, Err: io.EOF}, "EOF"},
		{"empty", &CodedError{Code: CodeInvalidCount}, "error code: 65"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("find: %w", New(CodeIndexOutOfRange, "index %d out of range [0, %d)", 7, 3))

	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.False(t, errors.Is(err, ErrInvalidCount))
	assert.Equal(t, CodeIndexOutOfRange, CodeOf(err))
	assert.Equal(t, "index 7 out of range [0, 3)", Message(err))
	assert.True(t, HasCode(err))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeSuccess, CodeOf(nil))
	assert.Equal(t, CodeInternalErr, CodeOf(io.EOF))
	assert.Equal(t, "", Message(io.EOF))
	assert.False(t, HasCode(io.EOF))
}

func TestRootError(t *testing.T) {
	err := fmt.Errorf("outer: %w", Wrap(CodeInvalidGraph, io.ErrUnexpectedEOF, "parse"))
	assert.Equal(t, io.ErrUnexpectedEOF, RootError(err))
	assert.Equal(t, io.EOF, RootError(io.EOF))
}

func TestJSON(t *testing.T) {
	ce := &CodedError{Code: CodeInvalidGraph, Message: "parse dot", Err: io.EOF}
	out := ce.JSON()
	require.True(t, gjson.Valid(out), out)

	assert.Equal(t, int64(CodeInvalidGraph), gjson.Get(out, "code").Int())
	assert.Equal(t, "parse dot", gjson.Get(out, "message").String())
	assert.Equal(t, "EOF", gjson.Get(out, "error").String())

	// 空字段不出现
	bare := (&CodedError{Code: CodeInvalidCount}).JSON()
	assert.False(t, gjson.Get(bare, "message").Exists())
	assert.False(t, gjson.Get(bare, "error").Exists())
}
