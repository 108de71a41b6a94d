// Package clock отделяет бизнес-логику от системного времени,
// чтобы дедлайны стирки можно было проверять с замороженными часами.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type System struct{}

func New() *System {
	return &System{}
}

// Now возвращает текущее время в UTC без монотонной составляющей,
// чтобы значение совпадало с тем, что читается обратно из хранилища.
func (System) Now() time.Time {
	return time.Now().UTC().Round(0)
}
