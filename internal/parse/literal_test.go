package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericLiterals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want []string
	}{
		{"x = 42;", nil},
		{"x = 12345;", []string{"12345"}},
		{"x = 0xFE;", []string{"0xFE"}},
		{"x = 0x1;", []string{"0x1"}},
		{"x = 3.14159;", []string{"3.14159"}},
		{"x = 3.14;", nil},
		{"x = 123.45;", []string{"123.45"}},
		{"x = 123.;", []string{"123"}},
		{"v100x = 1;", nil},
		{"a_2000 = 1;", nil},
		{"x = 12345e3;", nil},
		{"x = 1234.5e6;", []string{"1234"}},
		{"x = 1.500e3;", nil},
		{"x = 0x1Fz;", nil},
		{"f(256, 1024, -512)", []string{"256", "1024", "512"}},
		{"x = \u0661\u0662\u0663;", []string{"\u0661\u0662\u0663"}},
		{"x\u0661\u0662\u0663\u0664", []string{"\u0662\u0663\u0664"}},
		{"\u0661\u0662\u0663\u0664x", []string{"\u0661\u0662\u0663"}},
		{"123\u0664x", []string{"123"}},
		{"x = 1.\u0665\u0666\u0667;", []string{"1.\u0665\u0666\u0667"}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NumericLiterals(tt.code))
		})
	}
}

func TestMagicNumbersExcludesConventionalConstants(t *testing.T) {
	t.Parallel()

	got := MagicNumbers("a = 100; b = 1000; c = 0x00; d = 0xff; e = 0xFF; f = 0xFE; g = 101;")
	assert.Equal(t, []string{"0xFE", "101"}, got)
}
