package bookingcode

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultPrefix префикс кода бронирования по умолчанию
const DefaultPrefix = "RNT"

// suffixLength длина случайной части кода
const suffixLength = 8

// Generator генерирует человекочитаемые коды бронирований вида RNT-3F9A1C0B
type Generator struct {
	prefix string
}

// NewGenerator создает генератор с указанным префиксом
func NewGenerator(prefix string) *Generator {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Generator{prefix: prefix}
}

// Generate возвращает новый код: префикс + первые 8 hex символов случайного UUIDv4
func (g *Generator) Generate() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return g.prefix + "-" + strings.ToUpper(raw[:suffixLength])
}

// Prefix возвращает префикс генератора
func (g *Generator) Prefix() string {
	return g.prefix
}
