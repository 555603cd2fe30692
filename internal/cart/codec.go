package cart

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/foodtuck/storefront-api/internal/domain"
)

// wireItem is the persisted JSON shape of a line item. Quantity is decoded
// loosely because old payloads may omit it or hold junk values.
type wireItem struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Price    float64     `json:"price"`
	ImageURL string      `json:"imageUrl"`
	Quantity interface{} `json:"quantity,omitempty"`
}

// DecodeSnapshot parses a persisted cart payload. Empty input yields an empty
// snapshot. Malformed or non-array JSON yields an error; stores recover from
// that by substituting an empty cart. Individual quantities that are absent or
// non-numeric are coerced to 1.
func DecodeSnapshot(payload []byte) (domain.CartSnapshot, error) {
	if len(payload) == 0 {
		return domain.CartSnapshot{}, nil
	}

	var raw []wireItem
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}

	snapshot := make(domain.CartSnapshot, len(raw))
	for i, item := range raw {
		snapshot[i] = domain.LineItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    decimal.NewFromFloat(item.Price),
			ImageURL: item.ImageURL,
			Quantity: coerceQuantity(item.Quantity),
		}
	}

	return snapshot, nil
}

// EncodeSnapshot serializes a snapshot to the persisted JSON array form.
func EncodeSnapshot(snapshot domain.CartSnapshot) ([]byte, error) {
	raw := make([]wireItem, len(snapshot))
	for i, item := range snapshot {
		raw[i] = wireItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price.InexactFloat64(),
			ImageURL: item.ImageURL,
			Quantity: item.Quantity,
		}
	}
	return json.Marshal(raw)
}

func coerceQuantity(value interface{}) int {
	switch v := value.(type) {
	case float64:
		if v < 1 {
			return 1
		}
		return int(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 1 {
			return 1
		}
		return int(parsed)
	default:
		return 1
	}
}
