package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmPrompter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "y", input: "y\n", expected: true},
		{name: "yes", input: "yes\n", expected: true},
		{name: "uppercase Y", input: "Y\n", expected: true},
		{name: "spanish s", input: "s\n", expected: true},
		{name: "spanish si", input: "si\n", expected: true},
		{name: "spanish accented sí", input: "sí\n", expected: true},
		{name: "surrounding whitespace", input: "  yes  \n", expected: true},
		{name: "n is no", input: "n\n", expected: false},
		{name: "empty line defaults to no", input: "\n", expected: false},
		{name: "garbage is no", input: "what\n", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			prompter := NewConfirmPrompter(strings.NewReader(tt.input), &out)

			assert.Equal(t, tt.expected, prompter.Confirm("¿Cerrar jornada?"))
			assert.Contains(t, out.String(), "¿Cerrar jornada?")
		})
	}
}

func TestConfirmPrompterEOF(t *testing.T) {
	prompter := NewConfirmPrompter(strings.NewReader(""), &bytes.Buffer{})
	assert.False(t, prompter.Confirm("¿Continuar?"))
}

func TestAutoConfirm(t *testing.T) {
	assert.True(t, AutoConfirm{}.Confirm("anything"))
}
