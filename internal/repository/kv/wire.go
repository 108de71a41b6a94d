package kv

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// Записи кодируются в wire-формате protobuf: каждое поле помечено номером,
// поэтому новые поля можно добавлять, а старые читатели их просто пропустят.

var ErrMalformed = errors.New("malformed record")

func AppendUint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func AppendString(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func AppendTime(b []byte, num protowire.Number, v time.Time) []byte {
	return AppendUint(b, num, uint64(v.UnixNano()))
}

// AppendUints пишет packed-список; пустой список не пишется вовсе.
func AppendUints(b []byte, num protowire.Number, vs []uint64) []byte {
	if len(vs) == 0 {
		return b
	}

	packed := make([]byte, 0, len(vs)*2)
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, v)
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

// WalkFields вызывает fn для каждого поля записи, value - сырое значение поля без тега.
// Поля, которые fn не знает, она должна игнорировать.
func WalkFields(data []byte, fn func(num protowire.Number, typ protowire.Type, value []byte) error) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("tag: %w: %w", ErrMalformed, protowire.ParseError(n))
		}
		data = data[n:]

		m := protowire.ConsumeFieldValue(num, typ, data)
		if m < 0 {
			return fmt.Errorf("field %d: %w: %w", num, ErrMalformed, protowire.ParseError(m))
		}
		if err := fn(num, typ, data[:m]); err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		data = data[m:]
	}
	return nil
}

func Uint(typ protowire.Type, value []byte) (uint64, error) {
	if typ != protowire.VarintType {
		return 0, fmt.Errorf("want varint, got wire type %d: %w", typ, ErrMalformed)
	}
	v, n := protowire.ConsumeVarint(value)
	if n < 0 {
		return 0, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
	}
	return v, nil
}

func String(typ protowire.Type, value []byte) (string, error) {
	if typ != protowire.BytesType {
		return "", fmt.Errorf("want bytes, got wire type %d: %w", typ, ErrMalformed)
	}
	v, n := protowire.ConsumeString(value)
	if n < 0 {
		return "", fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
	}
	return v, nil
}

func Time(typ protowire.Type, value []byte) (time.Time, error) {
	v, err := Uint(typ, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, int64(v)).UTC(), nil
}

// Uints читает как packed, так и одиночное (unpacked) значение списка.
// Результат дописывается к acc, так как поле может встречаться несколько раз.
func Uints(acc []uint64, typ protowire.Type, value []byte) ([]uint64, error) {
	switch typ {
	case protowire.VarintType:
		v, err := Uint(typ, value)
		if err != nil {
			return acc, err
		}
		return append(acc, v), nil
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(value)
		if n < 0 {
			return acc, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeVarint(packed)
			if m < 0 {
				return acc, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(m))
			}
			acc = append(acc, v)
			packed = packed[m:]
		}
		return acc, nil
	default:
		return acc, fmt.Errorf("want list, got wire type %d: %w", typ, ErrMalformed)
	}
}
