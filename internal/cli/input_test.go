package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/dporg/internal/common"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Name?")
}

func TestGetSimpleText_EOFReturnsPartialLine(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "a.txt,b.txt\n", []string{"a.txt", "b.txt"}},
		{"spaces trimmed", " a.txt , b.txt \n", []string{"a.txt", "b.txt"}},
		{"empty items dropped", "a.txt,,\n", []string{"a.txt"}},
		{"empty line", "\n", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := bufio.NewReader(strings.NewReader(tc.input))
			var out bytes.Buffer
			got, err := GetList(in, "Files?", &out)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetMoney(t *testing.T) {
	t.Run("empty is zero", func(t *testing.T) {
		in := bufio.NewReader(strings.NewReader("\n"))
		var out bytes.Buffer
		got, err := GetMoney(in, "Price?", &out)
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("numeric", func(t *testing.T) {
		in := bufio.NewReader(strings.NewReader("12.50\n"))
		var out bytes.Buffer
		got, err := GetMoney(in, "Price?", &out)
		require.NoError(t, err)
		assert.Equal(t, 12.5, got)
	})

	t.Run("non-numeric is a validation error", func(t *testing.T) {
		in := bufio.NewReader(strings.NewReader("abc\n"))
		var out bytes.Buffer
		_, err := GetMoney(in, "Price?", &out)
		require.ErrorIs(t, err, common.ErrorValidation)
	})
}
