package user

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"laundry/internal/entities"
	"laundry/internal/repository/kv"
)

const (
	fieldID protowire.Number = iota + 1
	fieldName
	fieldBalance
	fieldPendingOrders
	fieldActiveOrders
	fieldCompletedOrders
)

type Codec struct{}

func (Codec) Encode(u entities.User) ([]byte, error) {
	b := make([]byte, 0, 64)
	b = kv.AppendUint(b, fieldID, u.ID)
	b = kv.AppendString(b, fieldName, u.Name)
	b = kv.AppendUint(b, fieldBalance, u.Balance)
	b = kv.AppendUints(b, fieldPendingOrders, u.PendingOrders)
	b = kv.AppendUints(b, fieldActiveOrders, u.ActiveOrders)
	b = kv.AppendUints(b, fieldCompletedOrders, u.CompletedOrders)
	return b, nil
}

func (Codec) Decode(data []byte) (entities.User, error) {
	var u entities.User

	err := kv.WalkFields(data, func(num protowire.Number, typ protowire.Type, value []byte) error {
		var err error
		switch num {
		case fieldID:
			u.ID, err = kv.Uint(typ, value)
		case fieldName:
			u.Name, err = kv.String(typ, value)
		case fieldBalance:
			u.Balance, err = kv.Uint(typ, value)
		case fieldPendingOrders:
			u.PendingOrders, err = kv.Uints(u.PendingOrders, typ, value)
		case fieldActiveOrders:
			u.ActiveOrders, err = kv.Uints(u.ActiveOrders, typ, value)
		case fieldCompletedOrders:
			u.CompletedOrders, err = kv.Uints(u.CompletedOrders, typ, value)
		}
		return err
	})
	if err != nil {
		return entities.User{}, fmt.Errorf("decode user: %w", err)
	}

	return u, nil
}
