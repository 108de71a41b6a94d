package response

import (
	"time"

	"laundry/internal/entities"
	"laundry/internal/generated/dto"
)

func ToUserDTO(u *entities.User) dto.User {
	return dto.User{
		ID:              u.ID,
		Name:            u.Name,
		Balance:         u.Balance,
		PendingOrders:   orderIDs(u.PendingOrders),
		ActiveOrders:    orderIDs(u.ActiveOrders),
		CompletedOrders: orderIDs(u.CompletedOrders),
	}
}

func ToOrderDTO(o *entities.Order) dto.Order {
	res := dto.Order{
		ID:          o.ID,
		Weight:      o.Weight,
		Package:     dto.OrderPackage(o.Package),
		AmountToPay: o.AmountToPay,
		Status:      dto.OrderStatus(o.Status),
		UserID:      o.UserID,
		CreatedAt:   o.CreatedAt,
		CreatedAtNs: o.CreatedAt.UnixNano(),
	}
	res.UpdatedAt, res.UpdatedAtNs = optionalTime(o.UpdatedAt)
	res.FinishedAt, res.FinishedAtNs = optionalTime(o.FinishedAt)
	return res
}

// пустой список сериализуется как [], а не null
func orderIDs(ids []uint64) []uint64 {
	if ids == nil {
		return []uint64{}
	}
	return ids
}

func optionalTime(t *time.Time) (*time.Time, *int64) {
	if t == nil {
		return nil, nil
	}
	v, ns := *t, t.UnixNano()
	return &v, &ns
}
