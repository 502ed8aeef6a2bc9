package http

import (
	"time"

	"orderaudit/internal/core/domain/model/report"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewError(code int, message string) Error {
	return Error{Code: code, Message: message}
}

type BatchCreated struct {
	BatchID string `json:"batchId"`
}

type Batch struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	OrderIDs  []string  `json:"orderIds"`
	CreatedAt time.Time `json:"createdAt"`
}

type BatchReport struct {
	BatchID   string         `json:"batchId"`
	Source    string         `json:"source"`
	CreatedAt time.Time      `json:"createdAt"`
	Report    *report.Report `json:"report"`
}
