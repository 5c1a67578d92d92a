// Package expiry вычисляет срок жизни коротких ссылок.
//
// Поддерживаются два режима:
//   - unbounded: ссылка живет бессрочно, если срок не задан явно;
//   - bounded: срок по умолчанию DefaultTTL, явный срок ограничивается MaxTTL от момента создания.
package expiry

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Mode режим политики сроков.
type Mode string

const (
	ModeUnbounded Mode = "unbounded"
	ModeBounded   Mode = "bounded"
)

const (
	DefaultTTL = 15 * 24 * time.Hour
	MaxTTL     = 30 * 24 * time.Hour
)

// MaxMinutes наибольший срок в минутах, представимый time.Duration.
const MaxMinutes = math.MaxInt64 / int64(time.Minute)

// ErrOutOfRange срок не представим time.Duration.
var ErrOutOfRange = errors.New("[expiry]: ttl out of range")

// Minutes переводит срок в минутах в time.Duration без переполнения.
func Minutes(minutes int) (time.Duration, error) {
	if int64(minutes) > MaxMinutes || int64(minutes) < -MaxMinutes {
		return 0, fmt.Errorf("%w: %d minutes", ErrOutOfRange, minutes)
	}
	return time.Duration(minutes) * time.Minute, nil
}

// Policy политика сроков жизни. Нулевое значение соответствует режиму unbounded.
type Policy struct {
	Mode       Mode
	DefaultTTL time.Duration
	MaxTTL     time.Duration
}

// NewPolicy создает политику и проверяет ее параметры.
// Нулевые длительности в режиме bounded заменяются значениями по умолчанию.
func NewPolicy(mode Mode, defaultTTL, maxTTL time.Duration) (Policy, error) {
	switch mode {
	case "", ModeUnbounded:
		return Policy{Mode: ModeUnbounded}, nil
	case ModeBounded:
		if defaultTTL <= 0 {
			defaultTTL = DefaultTTL
		}
		if maxTTL <= 0 {
			maxTTL = MaxTTL
		}
		if defaultTTL > maxTTL {
			return Policy{}, fmt.Errorf("default ttl %s exceeds max ttl %s", defaultTTL, maxTTL)
		}
		return Policy{Mode: ModeBounded, DefaultTTL: defaultTTL, MaxTTL: maxTTL}, nil
	default:
		return Policy{}, fmt.Errorf("unknown expiry mode `%s`", mode)
	}
}

// Compute вычисляет срок жизни новой ссылки.
//
// Параметры:
//   - requested: запрошенный момент истечения, nil если не задан
//   - createdAt: момент создания ссылки
//
// Возвращает:
//   - *time.Time: момент истечения или nil для бессрочной ссылки
func (p Policy) Compute(requested *time.Time, createdAt time.Time) *time.Time {
	if p.Mode != ModeBounded {
		if requested == nil {
			return nil
		}
		t := requested.UTC()
		return &t
	}

	if requested == nil {
		t := createdAt.Add(p.DefaultTTL)
		return &t
	}
	return p.clamp(requested.UTC(), createdAt)
}

// Recompute пересчитывает срок жизни существующей ссылки в минутах от момента ее создания.
// minutes == nil или <= 0 означает "без явного срока": бессрочно в режиме unbounded и
// DefaultTTL в режиме bounded. Срок больше MaxMinutes дает ErrOutOfRange.
func (p Policy) Recompute(createdAt time.Time, minutes *int) (*time.Time, error) {
	if minutes == nil || *minutes <= 0 {
		return p.Compute(nil, createdAt), nil
	}
	d, err := Minutes(*minutes)
	if err != nil {
		return nil, err
	}
	t := createdAt.Add(d)
	return p.Compute(&t, createdAt), nil
}

// IsLive сообщает, жива ли ссылка с заданным сроком в момент now.
func IsLive(expiresAt *time.Time, now time.Time) bool {
	return expiresAt == nil || expiresAt.After(now)
}

func (p Policy) clamp(requested, createdAt time.Time) *time.Time {
	limit := createdAt.Add(p.MaxTTL)
	if requested.After(limit) {
		return &limit
	}
	return &requested
}
