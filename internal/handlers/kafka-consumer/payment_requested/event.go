package payment_requested

// paymentRequestedEvent - запрос на оплату стирки от внешнего биллинга.
// Оба поля обязательны, указатели отличают отсутствие поля от id 0.
type paymentRequestedEvent struct {
	UserID  *uint64 `json:"user_id"`
	OrderID *uint64 `json:"order_id"`
}
