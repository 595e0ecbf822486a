package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay количество минут в сутках, "24:00" допустимо как конец интервала
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeString время суток в формате HH:MM
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseMinutes(s)
	if err != nil {
		return "", err
	}
	return FromMinutes(minutes)
}

// FromMinutes создает TimeString из количества минут от начала суток
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() int {
	minutes, err := parseMinutes(string(t))
	if err != nil {
		return 0
	}
	return minutes
}

// AddMinutes возвращает время, сдвинутое на n минут
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return FromMinutes(t.Minutes() + n)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат
func (t TimeString) Validate() error {
	_, err := parseMinutes(string(t))
	return err
}

func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner, Postgres отдает TIME как "HH:MM:SS"
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func parseMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, ErrInvalidTimeString
	}
	if len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, ErrInvalidTimeString
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrInvalidTimeString
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrInvalidTimeString
	}
	if hours < 0 || minutes < 0 || minutes > 59 {
		return 0, ErrInvalidTimeString
	}

	total := hours*60 + minutes
	if total > MinutesPerDay {
		return 0, ErrTimeOutOfRange
	}
	return total, nil
}
