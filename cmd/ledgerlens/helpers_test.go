package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "small", in: 4.5, want: "$4.50"},
		{name: "thousands", in: 1234.56, want: "$1,234.56"},
		{name: "millions", in: 1234567.89, want: "$1,234,567.89"},
		{name: "zero", in: 0, want: "$0.00"},
		{name: "exact hundreds", in: 100, want: "$100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAmount(tt.in))
		})
	}
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "(not set)", maskKey(""))
	assert.Equal(t, "********", maskKey("short"))
	assert.Equal(t, "abcd...wxyz", maskKey("abcdefgh-stuvwxyz"))
}
