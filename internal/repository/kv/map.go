// Package kv - долговременная упорядоченная мапа uint64 -> V поверх отдельной
// таблицы Postgres (id BIGINT PRIMARY KEY, payload BYTEA). Своих транзакций у мапы
// нет: атомарность между регионами обеспечивает вызывающий через tx.Manager.
package kv

import (
	"context"
	"errors"
	"fmt"
	"math"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"laundry/internal/repository"
)

// MaxValueSize - верхняя граница закодированного значения, продублирована
// CHECK-ограничением в миграции.
const MaxValueSize = 1024

var (
	ErrValueTooLarge = errors.New("encoded value exceeds max size")
	ErrKeyOutOfRange = errors.New("key out of storage range")
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Entry[V any] struct {
	Key   uint64
	Value V
}

type Map[V any] struct {
	querier Querier
	table   string
	codec   Codec[V]
}

func New[V any](querier Querier, table string, codec Codec[V]) *Map[V] {
	return &Map[V]{
		querier: querier,
		table:   table,
		codec:   codec,
	}
}

// Get возвращает значение и false, если ключа нет. Ключ за пределами BIGINT
// записан быть не может, поэтому для него ответ тот же: ключа нет.
func (m *Map[V]) Get(ctx context.Context, key uint64) (V, bool, error) {
	var zero V

	storageKey, err := toStorageKey(key)
	if err != nil {
		return zero, false, nil
	}

	query, args, err := qb.
		Select("payload").
		From(m.table).
		Where(sq.Eq{"id": storageKey}).
		ToSql()
	if err != nil {
		return zero, false, fmt.Errorf("build %s get query: %w", m.table, err)
	}

	var payload []byte
	err = m.querier.QueryRow(ctx, query, args...).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("unexpected %s get error: %w", m.table, err)
	}

	value, err := m.codec.Decode(payload)
	if err != nil {
		return zero, false, fmt.Errorf("decode %s[%d]: %w", m.table, key, err)
	}
	return value, true, nil
}

// Insert сохраняет значение, заменяя существующее под тем же ключом.
func (m *Map[V]) Insert(ctx context.Context, key uint64, value V) error {
	storageKey, err := toStorageKey(key)
	if err != nil {
		return err
	}

	payload, err := m.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("encode %s[%d]: %w", m.table, key, err)
	}
	if len(payload) > MaxValueSize {
		return fmt.Errorf("%s[%d] is %d bytes: %w", m.table, key, len(payload), ErrValueTooLarge)
	}

	query, args, err := qb.
		Insert(m.table).
		Columns("id", "payload").
		Values(storageKey, payload).
		Suffix("ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload").
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s insert query: %w", m.table, err)
	}

	_, err = m.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, pgerrcode.CheckViolation) {
			return fmt.Errorf("%s[%d]: %w", m.table, key, ErrValueTooLarge)
		}
		return fmt.Errorf("unexpected %s insert error: %w", m.table, err)
	}
	return nil
}

// Iterate возвращает все пары по возрастанию ключа.
func (m *Map[V]) Iterate(ctx context.Context) ([]Entry[V], error) {
	query, args, err := qb.
		Select("id", "payload").
		From(m.table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s iterate query: %w", m.table, err)
	}

	rows, err := m.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected %s iterate error: %w", m.table, err)
	}
	defer rows.Close()

	entries := make([]Entry[V], 0, 8)
	for rows.Next() {
		var (
			storageKey int64
			payload    []byte
		)
		if err := rows.Scan(&storageKey, &payload); err != nil {
			return nil, fmt.Errorf("unexpected %s iterate error: %w", m.table, err)
		}

		value, err := m.codec.Decode(payload)
		if err != nil {
			return nil, fmt.Errorf("decode %s[%d]: %w", m.table, storageKey, err)
		}
		entries = append(entries, Entry[V]{Key: uint64(storageKey), Value: value})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected %s iterate error: %w", m.table, err)
	}
	return entries, nil
}

func (m *Map[V]) Len(ctx context.Context) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").From(m.table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s len query: %w", m.table, err)
	}

	var count int64
	if err := m.querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected %s len error: %w", m.table, err)
	}
	return count, nil
}

func toStorageKey(key uint64) (int64, error) {
	if key > math.MaxInt64 {
		return 0, fmt.Errorf("%d: %w", key, ErrKeyOutOfRange)
	}
	return int64(key), nil
}
