package model

import (
	"time"

	"github.com/google/uuid"
)

type TopUpTransaction struct {
	Id                    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId                uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderId               string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	AmountCents           int64     `gorm:"not null"`
	Status                string    `gorm:"type:varchar(50);not null;default:'pending'"`
	MidtransTransactionId *string   `gorm:"type:varchar(255)"`
	CreatedAt             time.Time `gorm:"autoCreateTime"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime"`
}

func (TopUpTransaction) TableName() string {
	return "topup_transactions"
}

type UsageTransaction struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Feature        string    `gorm:"type:varchar(20);not null;index"`
	CycleStartedAt time.Time `gorm:"not null"`
	CreatedAt      time.Time `gorm:"default:now();not null"`
}

func (UsageTransaction) TableName() string {
	return "usage_transactions"
}
