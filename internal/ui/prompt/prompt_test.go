package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"exact match", "config.yaml\n", true},
		{"surrounding whitespace", "  config.yaml \r\n", true},
		{"no trailing newline", "config.yaml", true},
		{"mismatch", "yes\n", false},
		{"empty line", "\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewStandardPrompter(strings.NewReader(tt.input), &out)

			ok, err := p.Confirm("Overwrite config?", "config.yaml")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Contains(t, out.String(), "Overwrite config?")
			assert.Contains(t, out.String(), "Type 'config.yaml' to continue: ")
		})
	}
}

func TestConfirm_EmptyExpectedValue(t *testing.T) {
	p := NewStandardPrompter(strings.NewReader("anything\n"), &bytes.Buffer{})

	_, err := p.Confirm("msg", "")
	assert.Error(t, err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestConfirm_ReadError(t *testing.T) {
	p := NewStandardPrompter(failingReader{}, &bytes.Buffer{})

	_, err := p.Confirm("msg", "value")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
