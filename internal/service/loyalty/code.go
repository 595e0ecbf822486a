package loyalty

import (
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// newCouponCode CUPOM- и 8 случайных шестнадцатеричных символов в верхнем регистре
func newCouponCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return domain.CouponPrefix + strings.ToUpper(raw[:domain.CouponCodeLength])
}

// normalizeCode приводит введённый пользователем код к хранимому виду
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
