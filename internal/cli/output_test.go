package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bluewave/internal/domain"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	err := formatter.Success(map[string]string{"result": "ok"})
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatter_TextSuccessf(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	err := formatter.Successf("Added book #%d", 9)
	require.NoError(t, err)
	assert.Equal(t, "Added book #9\n", buf.String())
}

func TestOutputFormatter_DomainError_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	err := formatter.DomainError(domain.NewNotFoundError("book", 9))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestOutputFormatter_DomainError_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	_ = formatter.DomainError(domain.NewInsufficientStockError(5, 2, 10))
	assert.Contains(t, buf.String(), "Error [INSUFFICIENT_STOCK]:")
}

func TestOutputFormatter_DomainError_NonDomain(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	_ = formatter.DomainError(errors.New("boom"))
	assert.Contains(t, buf.String(), "Error [ERROR]: boom")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "bad flag", nil)))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))

	wrapped := &ExitError{Code: ExitCommandError, Message: "outer", Err: errors.New("inner")}
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
}

func TestExitError_Message(t *testing.T) {
	err := WrapExitError(ExitCommandError, "failed to open database", errors.New("disk full"))
	assert.Equal(t, "failed to open database: disk full", err.Error())

	bare := &ExitError{Code: ExitFailure, Message: "nope"}
	assert.Equal(t, "nope", bare.Error())
}
