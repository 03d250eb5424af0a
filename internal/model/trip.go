package model

import "time"

// PaymentMethod identifies how a trip was paid.
type PaymentMethod string

const (
	// PaymentCash is a cash fare. It is the only method counted toward
	// cash-on-hand; every other method is digital.
	PaymentCash PaymentMethod = "efectivo"
	// PaymentCard is a card fare.
	PaymentCard PaymentMethod = "tarjeta"
	// PaymentVoucher is a voucher fare.
	PaymentVoucher PaymentMethod = "vale"
	// PaymentTransfer is a bank-transfer fare.
	PaymentTransfer PaymentMethod = "transferencia"
)

// PaymentMethods lists every recognized payment method in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentCard, PaymentVoucher, PaymentTransfer}
}

// Valid reports whether the payment method is one of the recognized values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentVoucher, PaymentTransfer:
		return true
	}
	return false
}

// IsCash reports whether the method counts toward cash earnings.
func (m PaymentMethod) IsCash() bool {
	return m == PaymentCash
}

// Trip ("carrera") is one completed ride within the active shift.
type Trip struct {
	Timestamp     time.Time
	PlatformID    string
	PaymentMethod PaymentMethod
	ID            int64
	GrossAmount   float64
	TollAmount    float64
	NetAmount     float64
}

// NewTrip builds a trip at the given time. The id is the creation time in
// epoch millis; net is gross minus toll and is never recomputed afterward.
func NewTrip(now time.Time, platformID string, method PaymentMethod, gross float64) Trip {
	return Trip{
		ID:            now.UnixMilli(),
		Timestamp:     now,
		PlatformID:    platformID,
		PaymentMethod: method,
		GrossAmount:   gross,
		TollAmount:    0,
		NetAmount:     gross,
	}
}
