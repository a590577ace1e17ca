package api

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/gin-gonic/gin/binding"

	"github.com/go-playground/validator/v10"
)

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// validateLuhn проверяет номер карты по алгоритму Луна.
func validateLuhn(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return str != "" && isValidLuhn(str)
}

// isValidLuhn проверяет корректность строки по алгоритму Луна.
func isValidLuhn(code string) bool {
	var sum int
	maxDigit := 9
	double := false

	for i := len(code) - 1; i >= 0; i-- {
		char := code[i]

		if !unicode.IsDigit(rune(char)) {
			return false
		}

		digit := int(char - '0')

		if double {
			digit *= 2
			if digit > maxDigit {
				digit -= maxDigit
			}
		}
		sum += digit
		double = !double
	}

	// Код считается валидным, если сумма кратна 10
	return sum%10 == 0
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("max_bytes", validateMaxBytes); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	if err := v.RegisterValidation("luhn", validateLuhn); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
