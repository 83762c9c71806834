package specification

import (
	"time"

	"gorm.io/gorm"
)

// MeasuredBetween filters measurement rows to a half-open time range.
type MeasuredBetween struct {
	From time.Time
	To   time.Time
}

func (s MeasuredBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("measured_at >= ? AND measured_at < ?", s.From, s.To)
}

// ConsumedBetween is the nutrition diary counterpart of MeasuredBetween.
type ConsumedBetween struct {
	From time.Time
	To   time.Time
}

func (s ConsumedBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("consumed_at >= ? AND consumed_at < ?", s.From, s.To)
}

type ByOrderId struct {
	OrderId string
}

func (s ByOrderId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("order_id = ?", s.OrderId)
}
