package payment_requested

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"laundry/internal/service"
	"laundry/pkg/logger"
)

var errMissingIDs = errors.New("user_id and order_id are required")

type Handler struct {
	laundryService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, laundryService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "payment.requested"),
	)

	return &Handler{
		laundryService:           laundryService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing оплачивает стирку по одному сообщению. Бизнес-отказы
// (нет денег, уже оплачено, чужой заказ) коммитятся: повтор их не исправит.
// Возвращает true при отмене контекста, сообщение тогда остаётся в топике.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event paymentRequestedEvent
	err := json.Unmarshal(message.Value, &event)
	if err == nil && (event.UserID == nil || event.OrderID == nil) {
		err = errMissingIDs
	}
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("user", *event.UserID),
		logger.NewField("order", *event.OrderID),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("processing")

	order, err := h.laundryService.Pay(ctx, *event.UserID, *event.OrderID)
	if err != nil {
		errLog := msgLog.With(logger.NewField("error", err))
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			errLog.Warn("context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, service.ErrInsufficientBalance):
			errLog.Warn("insufficient balance")

		case errors.Is(err, service.ErrAlreadyPaid):
			errLog.Warn("laundry already paid")

		case errors.Is(err, service.ErrOwnerMismatch):
			errLog.Warn("laundry belongs to another user")

		case errors.Is(err, service.ErrNotFound):
			errLog.Warn("user or laundry not found")

		default:
			errLog.Error("failed to pay laundry")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("status", order.Status.String()),
		logger.NewField("finished_at", order.FinishedAt),
	).Info("processed")

	sess.MarkMessage(message, "")
	return false
}
