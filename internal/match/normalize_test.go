package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLapTimes(t *testing.T) {
	cases := []struct {
		name  string
		field string
		want  []float64
	}{
		{"clean", "61.2;59.9;60.4", []float64{61.2, 59.9, 60.4}},
		{"malformed segments dropped", "61.2;; abc;59.9", []float64{61.2, 59.9}},
		{"whitespace tolerated", " 61.2 ; 59.9 ", []float64{61.2, 59.9}},
		{"empty field", "", []float64{}},
		{"only junk", ";;not-a-number;", []float64{}},
		{"negative dropped", "61.2;-3.5;59.9", []float64{61.2, 59.9}},
		{"non-finite dropped", "NaN;Inf;59.9", []float64{59.9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseLapTimes(tc.field)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePosition(t *testing.T) {
	assert.Equal(t, 1, parsePosition("1"))
	assert.Equal(t, 12, parsePosition(" 12 "))
	assert.Equal(t, 0, parsePosition(""))
	assert.Equal(t, 0, parsePosition("first"))
	assert.Equal(t, 0, parsePosition("-2"))
	assert.Equal(t, 0, parsePosition("3.5"))
}

func TestParseTelemetryValue(t *testing.T) {
	assert.Equal(t, 42.5, parseTelemetryValue("42.5"))
	assert.Equal(t, 0.0, parseTelemetryValue(""))
	assert.Equal(t, 0.0, parseTelemetryValue("lots"))
	assert.Equal(t, 0.0, parseTelemetryValue("NaN"))
}
