package entities

import (
	"errors"
	"time"
)

// Ошибки домена резервирований.
var (
	ErrReservationNotFound = errors.New("reservation not found")
)

// ReservationStatus - статус резервирования.
type ReservationStatus string

// Возможные статусы резервирования.
const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusNotified  ReservationStatus = "NOTIFIED"
	ReservationStatusFulfilled ReservationStatus = "FULFILLED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusExpired   ReservationStatus = "EXPIRED"
)

// Reservation представляет заявку читателя на книгу, все экземпляры
// которой заняты. QueuePosition - позиция в очереди, начиная с 1.
type Reservation struct {
	ID            string            `json:"id"`
	UserID        string            `json:"userId"`
	BookID        string            `json:"bookId"`
	ReservedAt    time.Time         `json:"reservedAt"`
	NotifiedAt    *time.Time        `json:"notifiedAt"`
	ExpiresAt     *time.Time        `json:"expiresAt"`
	Status        ReservationStatus `json:"status"`
	QueuePosition int               `json:"queuePosition"`
}

// CreateReservationInput - входные данные для создания резервирования.
type CreateReservationInput struct {
	UserID string `json:"userId"`
	BookID string `json:"bookId"`
}
