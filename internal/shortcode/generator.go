// Package shortcode генерирует короткие идентификаторы ссылок.
//
// Идентификатор имеет фиксированную длину и состоит из символов base62 (0-9, A-Z, a-z).
// Каждый символ выбирается равновероятно: байты источника случайности, не попадающие в
// диапазон кратный размеру алфавита, отбрасываются.
package shortcode

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"
)

// Alphabet алфавит генерируемых идентификаторов.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// maxUnbiased наибольшее значение байта (не включительно), при котором
// остаток от деления на размер алфавита распределен равномерно.
const maxUnbiased = 256 - (256 % len(Alphabet))

var ErrInvalidLength = errors.New("[shortcode]: length must be positive")

// Generator генератор коротких идентификаторов. Безопасен для конкурентного использования.
type Generator struct {
	length int
	mu     sync.Mutex
	rnd    io.Reader
}

// NewGenerator создает генератор идентификаторов заданной длины.
//
// Параметры:
//   - length: длина идентификатора
//   - opts: функциональные опции (например WithRandom)
//
// Возвращает:
//   - *Generator: генератор
//   - error: ErrInvalidLength если length <= 0
func NewGenerator(length int, opts ...func(*Generator)) (*Generator, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	g := &Generator{
		length: length,
		rnd:    rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// WithRandom подменяет источник случайности. Чтения сериализуются генератором,
// поэтому источник не обязан быть потокобезопасным.
func WithRandom(r io.Reader) func(*Generator) {
	return func(g *Generator) {
		g.rnd = r
	}
}

// Length длина генерируемых идентификаторов.
func (g *Generator) Length() int {
	return g.length
}

// Generate возвращает новый случайный идентификатор.
func (g *Generator) Generate() (string, error) {
	out := make([]byte, 0, g.length)
	// с запасом, чтобы чаще укладываться в одно чтение
	buf := make([]byte, g.length+g.length/2+1)

	g.mu.Lock()
	defer g.mu.Unlock()

	for len(out) < g.length {
		if _, err := io.ReadFull(g.rnd, buf); err != nil {
			return "", fmt.Errorf("read random source: %w", err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiased {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == g.length {
				break
			}
		}
	}
	return string(out), nil
}

// Valid проверяет, что code соответствует формату идентификаторов генератора.
func (g *Generator) Valid(code string) bool {
	if len(code) != g.length {
		return false
	}
	return InAlphabet(code)
}

// InAlphabet проверяет, что все символы строки принадлежат алфавиту.
func InAlphabet(s string) bool {
	for i := range len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		default:
			return false
		}
	}
	return true
}
