package timezone

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const (
	// DefaultLocation часовой пояс барбершопов
	DefaultLocation = "America/Sao_Paulo"

	DateLayout      = "2006-01-02"
	TimeShortLayout = "15:04"
)

// Clock определяет "сейчас" и форматирует время в одном фиксированном часовом поясе,
// независимо от локального пояса машины
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New создаёт часы для указанной зоны. Пустое имя означает DefaultLocation
func New(location string) (*Clock, error) {
	if location == "" {
		location = DefaultLocation
	}
	loc, err := time.LoadLocation(location)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %q: %w", location, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// MustDefault часы для America/Sao_Paulo. Зона встроена через time/tzdata
func MustDefault() *Clock {
	c, err := New(DefaultLocation)
	if err != nil {
		panic(err)
	}
	return c
}

// WithNow возвращает копию часов с подменённым источником времени
func (c *Clock) WithNow(now func() time.Time) *Clock {
	return &Clock{loc: c.loc, now: now}
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now текущий момент в зоне часов
func (c *Clock) Now() time.Time {
	return c.ToZoned(c.now())
}

// ToZoned переводит момент в зону часов
func (c *Clock) ToZoned(t time.Time) time.Time {
	return t.In(c.loc)
}

// Format форматирует момент в зоне часов по layout из пакета time
func (c *Clock) Format(t time.Time, layout string) string {
	return c.ToZoned(t).Format(layout)
}

// Today текущая дата в формате YYYY-MM-DD
func (c *Clock) Today() string {
	return c.Now().Format(DateLayout)
}

// CurrentTimeShort текущее время в формате HH:MM
func (c *Clock) CurrentTimeShort() string {
	return c.Now().Format(TimeShortLayout)
}

// ParseDate разбирает YYYY-MM-DD как полночь в зоне часов
func (c *Clock) ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, c.loc)
}

// At собирает момент из даты и времени HH:MM в зоне часов
func (c *Clock) At(date time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse(TimeShortLayout, hhmm)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, c.loc), nil
}
