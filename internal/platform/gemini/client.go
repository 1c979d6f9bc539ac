// Package gemini implements the vision extraction collaborator on top of the
// Gemini API. Responses are loosely-typed JSON from an untrusted model and
// are coerced field by field before they reach the core services.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/hisakata/kakeibo/internal/apperrors"
	portssvc "github.com/hisakata/kakeibo/internal/core/ports/services"
)

const receiptPrompt = `このレシート画像を解析して、以下のJSON形式で情報を抽出してください。
金額は整数（円単位）で返してください。日付はYYYY-MM-DD形式で返してください。

{
  "store_name": "店舗名",
  "date": "YYYY-MM-DD",
  "items": [
    { "name": "品目名", "amount": 金額 }
  ],
  "total": 合計金額
}

JSONのみを返してください。説明文は不要です。`

const statementPrompt = `このクレジットカード利用明細のスクリーンショットを解析して、以下のJSON形式で各取引を抽出してください。
金額は整数（円単位）で返してください。日付はYYYY-MM-DD形式で返してください。

{
  "items": [
    { "date": "YYYY-MM-DD", "description": "店舗名・摘要", "amount": 金額 }
  ]
}

JSONのみを返してください。説明文は不要です。`

// Extractor implements portssvc.VisionExtractor with the Gemini API.
type Extractor struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ portssvc.VisionExtractor = (*Extractor)(nil)

// NewExtractor creates the Gemini client.
func NewExtractor(ctx context.Context, apiKey, model string, timeout time.Duration) (*Extractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Extractor{client: client, model: model, timeout: timeout}, nil
}

// generate sends parts to the model and returns the raw response text. The
// per-call timeout keeps a hung collaborator from stalling a scan session.
func (e *Extractor) generate(ctx context.Context, parts ...*genai.Part) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrExtraction, err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty model response", apperrors.ErrExtraction)
	}
	return text, nil
}

// ExtractReceipt implements portssvc.VisionExtractor.
func (e *Extractor) ExtractReceipt(ctx context.Context, image []byte, mimeType string) (*portssvc.ReceiptExtraction, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	text, err := e.generate(ctx, genai.NewPartFromText(receiptPrompt), genai.NewPartFromBytes(image, mimeType))
	if err != nil {
		return nil, err
	}
	return coerceReceipt(text)
}

// ExtractStatement implements portssvc.VisionExtractor.
func (e *Extractor) ExtractStatement(ctx context.Context, image []byte, mimeType string) (*portssvc.StatementExtraction, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	text, err := e.generate(ctx, genai.NewPartFromText(statementPrompt), genai.NewPartFromBytes(image, mimeType))
	if err != nil {
		return nil, err
	}
	return coerceStatement(text)
}

// SuggestCategory implements portssvc.VisionExtractor. The model is expected
// to echo one of candidateNames; the categorizer handles anything else.
func (e *Extractor) SuggestCategory(ctx context.Context, description string, candidateNames []string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "以下の品目・店舗名に最も適切な費目を、選択肢の中から1つだけ返してください。\n\n品目: %q\n\n選択肢:\n", description)
	for _, name := range candidateNames {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	b.WriteString("\n費目名のみを返してください。説明文は不要です。")

	text, err := e.generate(ctx, genai.NewPartFromText(b.String()))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
