package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// WorkItem — одна позиция сметы, выбранная пользователем на форме.
// Cost приходит с клиента и сохраняется как есть, без пересчёта.
type WorkItem struct {
	Type     string  `json:"type"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	Cost     float64 `json:"cost"`
}

// ParseWorkItems разбирает JSON из поля формы. Битый JSON — не ошибка,
// просто считаем, что работы не выбраны.
func ParseWorkItems(raw string) []WorkItem {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var items []WorkItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

// Truncate обрезает строку до n символов.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// FormatAmount форматирует сумму как целое число с разделителями тысяч:
// 1234567.8 -> "1,234,568".
func FormatAmount(v float64) string {
	s := strconv.FormatInt(int64(math.Round(v)), 10)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}
	return sign + b.String()
}
