package validation

import (
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("reg_number", isRegistrationNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("reg_year", isRegistrationYear); err != nil {
		return err
	}
	return nil
}

// isRegistrationNumber - гос. номер техники: буквы, цифры и дефисы, 4-20 символов
func isRegistrationNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^[A-Za-z0-9-]{4,20}$`)
	return re.MatchString(fl.Field().String())
}

// isRegistrationYear - четырёхзначный год не позже текущего
func isRegistrationYear(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 4 {
		return false
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return year >= 1900 && year <= time.Now().Year()
}
