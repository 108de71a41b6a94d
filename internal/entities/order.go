package entities

import "time"

type Order struct {
	ID          uint64
	Weight      uint64
	Package     OrderPackage
	AmountToPay uint64
	Status      OrderStatusType
	UserID      uint64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	FinishedAt  *time.Time
}

type OrderPackage string

const (
	PackageRegular OrderPackage = "regular"
	PackageExpress OrderPackage = "express"
)

func (p OrderPackage) String() string {
	return string(p)
}

type OrderStatusType string

const (
	OrderAwaitingPayment OrderStatusType = "awaiting_payment"
	OrderPaidInProgress  OrderStatusType = "paid_in_progress"
	OrderPaidDone        OrderStatusType = "paid_done"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsPaid - статус после оплаты, откатить его назад нельзя.
func (s OrderStatusType) IsPaid() bool {
	return s == OrderPaidInProgress || s == OrderPaidDone
}
