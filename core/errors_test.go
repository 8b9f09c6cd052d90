package core

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	err := Error(ESYNTAX, "cannot parse %q", "x")
	assert.Equal(t, ESYNTAX, Code(err))
	assert.Equal(t, `cannot parse "x"`, UserMessage(err))
	assert.Equal(t, "[124] syntax error", err.Error())
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
	assert.Equal(t, "undefined error", errorText(999))
}

func TestWrapError(t *testing.T) {
	err := WrapError(io.EOF, EMISSING, "no more input")
	assert.True(t, errors.Is(err, io.EOF))
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "no more input", UserMessage(err))
	err = WrapError(nil, EDUPLICATE, "view type %q", "if")
	assert.Equal(t, EDUPLICATE, Code(err))
	assert.Equal(t, "[125] duplicate", err.Error())
}

func TestAtElement(t *testing.T) {
	assert.Nil(t, AtElement(nil, "div#a < body"))
	err := AtElement(Error(EINVALID, "illegal overflow: %q", "sideways"), "div#a < body")
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "div#a < body", ElementAddress(err))
	assert.Equal(t, `illegal overflow: "sideways" (at div#a < body)`, UserMessage(err))
	assert.Equal(t, "[123] invalid at div#a < body", err.Error())
	// the innermost location wins
	err = AtElement(err, "body")
	assert.Equal(t, "div#a < body", ElementAddress(err))
	// foreign errors keep their chain
	err = AtElement(io.EOF, "p")
	assert.True(t, errors.Is(err, io.EOF))
	assert.Equal(t, EINTERNAL, Code(err))
	assert.Equal(t, "p", ElementAddress(err))
	assert.Equal(t, "", ElementAddress(io.EOF))
}
