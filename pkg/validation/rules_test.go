package validation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type regNumberProbe struct {
	Value string `validate:"reg_number"`
}

type regYearProbe struct {
	Value string `validate:"reg_year"`
}

func TestRegNumberRule(t *testing.T) {
	v := New()

	valid := []string{"KA01AB1234", "ab-12", "1234", "A1B2-C3D4"}
	for _, s := range valid {
		assert.NoError(t, v.Validate(regNumberProbe{Value: s}), "ожидался валидный номер: %q", s)
	}

	invalid := []string{"", "abc", "номер123", "with space", "way-too-long-registration-number"}
	for _, s := range invalid {
		assert.Error(t, v.Validate(regNumberProbe{Value: s}), "ожидался невалидный номер: %q", s)
	}
}

func TestRegYearRule(t *testing.T) {
	v := New()

	currentYear := fmt.Sprintf("%d", time.Now().Year())
	valid := []string{"1900", "2020", currentYear}
	for _, s := range valid {
		assert.NoError(t, v.Validate(regYearProbe{Value: s}), "ожидался валидный год: %q", s)
	}

	nextYear := fmt.Sprintf("%d", time.Now().Year()+1)
	invalid := []string{"", "20", "1899", "abcd", nextYear}
	for _, s := range invalid {
		assert.Error(t, v.Validate(regYearProbe{Value: s}), "ожидался невалидный год: %q", s)
	}
}
