package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateString(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{
			name:     "Coluna de texto passa inalterada",
			value:    "2024-01-05",
			expected: "2024-01-05",
		},
		{
			name:     "Coluna em bytes passa inalterada",
			value:    []byte("2024-01-05"),
			expected: "2024-01-05",
		},
		{
			name:     "time.Time vira data ISO, nunca RFC3339",
			value:    time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			expected: "2024-01-05",
		},
		{
			name:     "time.Time preserva o zero à esquerda",
			value:    time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC),
			expected: "2024-11-03",
		},
		{
			name:     "Valor nulo vira string vazia",
			value:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dateString(tt.value))
		})
	}
}
