package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient は genai SDK を用いた GenerativeModel の実装です。
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient は API キーから Gemini API バックエンドのクライアントを初期化します。
// キーはプロセス設定（環境変数）から渡される前提で、ここでは検証のみ行います。
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("Geminiクライアントの初期化に失敗しました: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

// GenerateWithParts はパーツ群をユーザーロールの1コンテンツとして送信します。
// 画像生成モデルはテキストと画像の両モダリティを返しうるため、両方を許可して呼び出します。
func (c *GeminiClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part) (*genai.GenerateContentResponse, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}

	return c.client.Models.GenerateContent(ctx, model, contents, config)
}
