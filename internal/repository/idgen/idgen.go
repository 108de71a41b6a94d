// Package idgen выдаёт id из одного общего счётчика для пользователей и заказов.
package idgen

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
)

// Ceiling - предел хранилища (BIGINT). Счётчик никогда не переходит через него.
const Ceiling uint64 = math.MaxInt64

// counterRegion - строка id_counter, общая для всех сущностей.
const counterRegion = 0

// ErrExhausted - счётчик упёрся в Ceiling. Это не бизнес-ошибка:
// операция прерывается целиком и транзакция откатывается.
var ErrExhausted = errors.New("id generator exhausted")

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Generator struct {
	querier Querier
}

func New(querier Querier) *Generator {
	return &Generator{
		querier: querier,
	}
}

// NextID возвращает текущее значение счётчика и увеличивает его на единицу,
// поэтому первый выданный id равен 0.
func (g *Generator) NextID(ctx context.Context) (uint64, error) {
	query := `UPDATE id_counter
		SET next_value = next_value + 1
		WHERE region = $1 AND next_value < $2
		RETURNING next_value - 1`

	var id int64
	err := g.querier.QueryRow(ctx, query, counterRegion, int64(Ceiling)).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrExhausted
		}
		return 0, fmt.Errorf("unexpected id generator error: %w", err)
	}

	return uint64(id), nil
}
