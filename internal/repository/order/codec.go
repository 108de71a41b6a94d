package order

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
	"laundry/internal/entities"
	"laundry/internal/repository/kv"
)

const (
	fieldID protowire.Number = iota + 1
	fieldWeight
	fieldPackage
	fieldAmountToPay
	fieldStatus
	fieldUserID
	fieldCreatedAt
	fieldUpdatedAt
	fieldFinishedAt
)

type Codec struct{}

func (Codec) Encode(o entities.Order) ([]byte, error) {
	b := make([]byte, 0, 96)
	b = kv.AppendUint(b, fieldID, o.ID)
	b = kv.AppendUint(b, fieldWeight, o.Weight)
	b = kv.AppendString(b, fieldPackage, o.Package.String())
	b = kv.AppendUint(b, fieldAmountToPay, o.AmountToPay)
	b = kv.AppendString(b, fieldStatus, o.Status.String())
	b = kv.AppendUint(b, fieldUserID, o.UserID)
	b = kv.AppendTime(b, fieldCreatedAt, o.CreatedAt)
	// отсутствующее поле и есть "не задано"
	if o.UpdatedAt != nil {
		b = kv.AppendTime(b, fieldUpdatedAt, *o.UpdatedAt)
	}
	if o.FinishedAt != nil {
		b = kv.AppendTime(b, fieldFinishedAt, *o.FinishedAt)
	}
	return b, nil
}

func (Codec) Decode(data []byte) (entities.Order, error) {
	var o entities.Order

	err := kv.WalkFields(data, func(num protowire.Number, typ protowire.Type, value []byte) error {
		var err error
		switch num {
		case fieldID:
			o.ID, err = kv.Uint(typ, value)
		case fieldWeight:
			o.Weight, err = kv.Uint(typ, value)
		case fieldPackage:
			var s string
			s, err = kv.String(typ, value)
			o.Package = entities.OrderPackage(s)
		case fieldAmountToPay:
			o.AmountToPay, err = kv.Uint(typ, value)
		case fieldStatus:
			var s string
			s, err = kv.String(typ, value)
			o.Status = entities.OrderStatusType(s)
		case fieldUserID:
			o.UserID, err = kv.Uint(typ, value)
		case fieldCreatedAt:
			o.CreatedAt, err = kv.Time(typ, value)
		case fieldUpdatedAt:
			o.UpdatedAt, err = decodeOptionalTime(typ, value)
		case fieldFinishedAt:
			o.FinishedAt, err = decodeOptionalTime(typ, value)
		}
		return err
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("decode order: %w", err)
	}

	return o, nil
}

func decodeOptionalTime(typ protowire.Type, value []byte) (*time.Time, error) {
	t, err := kv.Time(typ, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
