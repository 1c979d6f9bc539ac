package gemini

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hisakata/kakeibo/internal/apperrors"
	portssvc "github.com/hisakata/kakeibo/internal/core/ports/services"
)

// stripFences removes markdown code fences the model sometimes wraps its JSON in.
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// decodeObject parses text into a generic map, keeping numbers as json.Number
// so integer yen amounts survive untouched.
func decodeObject(text string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(stripFences(text)))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON response: %v", apperrors.ErrExtraction, err)
	}
	return obj, nil
}

func coerceString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// coerceAmount accepts json.Number, float64 or numeric strings. Anything else
// (absent, null, garbage) coerces to 0, ok=false.
func coerceAmount(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return int64(f), true
		}
	case float64:
		return int64(n), true
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}

// coerceDate validates YYYY-MM-DD, falling back to today for anything the
// model got wrong. Dates are review-editable so a fallback beats a rejection.
func coerceDate(v any) string {
	s := coerceString(v)
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return s
	}
	return time.Now().Format("2006-01-02")
}

func coerceReceipt(text string) (*portssvc.ReceiptExtraction, error) {
	obj, err := decodeObject(text)
	if err != nil {
		return nil, err
	}

	extraction := &portssvc.ReceiptExtraction{
		StoreName: coerceString(obj["store_name"]),
		Date:      coerceDate(obj["date"]),
	}
	if total, ok := coerceAmount(obj["total"]); ok {
		extraction.Total = total
	}

	if rawItems, ok := obj["items"].([]any); ok {
		for _, rawItem := range rawItems {
			item, ok := rawItem.(map[string]any)
			if !ok {
				continue
			}
			name := coerceString(item["name"])
			amount, ok := coerceAmount(item["amount"])
			if name == "" || !ok {
				continue
			}
			extraction.Items = append(extraction.Items, portssvc.ReceiptItem{Name: name, Amount: amount})
		}
	}

	// A receipt without a store name and without a usable total carries no
	// transaction at all; treat the whole extraction as failed.
	if extraction.StoreName == "" && extraction.Total <= 0 {
		return nil, fmt.Errorf("%w: response contained no usable receipt data", apperrors.ErrExtraction)
	}

	// Recover a missing total from line items when possible.
	if extraction.Total <= 0 {
		for _, item := range extraction.Items {
			extraction.Total += item.Amount
		}
	}
	if extraction.Total <= 0 {
		return nil, fmt.Errorf("%w: receipt total missing or non-positive", apperrors.ErrExtraction)
	}

	return extraction, nil
}

func coerceStatement(text string) (*portssvc.StatementExtraction, error) {
	obj, err := decodeObject(text)
	if err != nil {
		return nil, err
	}

	extraction := &portssvc.StatementExtraction{}
	rawItems, ok := obj["items"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: response contained no items array", apperrors.ErrExtraction)
	}
	for _, rawItem := range rawItems {
		item, ok := rawItem.(map[string]any)
		if !ok {
			continue
		}
		description := coerceString(item["description"])
		amount, ok := coerceAmount(item["amount"])
		if description == "" || !ok || amount <= 0 {
			continue // drop malformed rows, keep the rest
		}
		extraction.Items = append(extraction.Items, portssvc.StatementItem{
			Date:        coerceDate(item["date"]),
			Description: description,
			Amount:      amount,
		})
	}

	if len(extraction.Items) == 0 {
		return nil, fmt.Errorf("%w: no usable statement items in response", apperrors.ErrExtraction)
	}
	return extraction, nil
}
