package domain

import "time"

// Параметры расписания
const (
	SlotStepMinutes        = 30
	DefaultServiceDuration = 30
	MaxServiceDuration     = 480 // 8 часов
)

// Параметры программы лояльности
const (
	CouponThreshold  = 10
	CouponValidity   = 90 * 24 * time.Hour
	CouponPrefix     = "CUPOM-"
	CouponCodeLength = 8
	CompletionCredit = 1
	MaxLoyaltyPoints = 1_000_000
)

// Окно напоминаний относительно текущего момента
const (
	ReminderWindowFrom = 54 * time.Minute // 0.9 ч
	ReminderWindowTo   = 66 * time.Minute // 1.1 ч
)

// Ограничения на пользовательский ввод
const (
	MaxNotesLength       = 500
	MaxTitleLength       = 200
	MaxMessageLength     = 2000
	MaxDescriptionLength = 500
	MaxBlockReasonLength = 255
	MaxCategoryLength    = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
