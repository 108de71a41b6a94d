package entities

// StartingBalance - кредит, который получает каждый новый пользователь.
const StartingBalance uint64 = 100000

type User struct {
	ID              uint64
	Name            string
	Balance         uint64
	PendingOrders   []uint64
	ActiveOrders    []uint64
	CompletedOrders []uint64
}

// MoveOrder переносит id заказа из одного списка пользователя в другой.
// Если id в исходном списке нет, он всё равно попадает в целевой, но не дублируется.
func MoveOrder(from, to []uint64, orderID uint64) ([]uint64, []uint64) {
	return RemoveOrder(from, orderID), AppendOrder(to, orderID)
}

func RemoveOrder(list []uint64, orderID uint64) []uint64 {
	result := list[:0:0]
	for _, id := range list {
		if id != orderID {
			result = append(result, id)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func AppendOrder(list []uint64, orderID uint64) []uint64 {
	for _, id := range list {
		if id == orderID {
			return list
		}
	}
	return append(list, orderID)
}
