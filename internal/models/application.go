package models

import "time"

// Application — одна заявка с формы. Запись создаётся один раз
// и дальше не изменяется и не удаляется.
type Application struct {
	ID            uint   `gorm:"primaryKey"`
	FullName      string `gorm:"size:100;not null"`
	Address       string `gorm:"size:200;not null"`
	Phone         string `gorm:"size:20;not null"`
	Comment       string `gorm:"size:500"`
	IPAddress     string `gorm:"size:50"`
	UserAgent     string `gorm:"size:200"`
	SelectedWorks string `gorm:"type:text"` // JSON-список работ; пусто у записей старой схемы
	TotalAmount   float64
	CreatedAt     time.Time
}
