package generator

import (
	"fmt"

	"github.com/shouni/gemini-canvas-web/pkg/domain"
	"google.golang.org/genai"
)

// aspectRatioInstruction はモデルが勝手に比率を変えないよう
// プロンプト末尾に常に連結する固定の指示文です。
const aspectRatioInstruction = "Generate the image on the attached blank canvas. Keep the exact aspect ratio of the attached image and do not alter it."

// canvasMimeType はプレースホルダーキャンバスの MIME タイプです。
const canvasMimeType = "image/png"

// BuildParts はプロンプトとキャンバスから Gemini へ送るパーツ群を組み立てます。
// テキストを先頭、キャンバス画像を2番目に置きます。
func BuildParts(prompt string, canvas []byte) []*genai.Part {
	return []*genai.Part{
		{Text: fmt.Sprintf("%s\n\n%s", prompt, aspectRatioInstruction)},
		{InlineData: &genai.Blob{MIMEType: canvasMimeType, Data: canvas}},
	}
}

// ParseToResponse は Gemini のレスポンスを解析して ImageResponse に変換します。
// 最初の候補 (Candidate) のみを対象とし、パーツを順に走査して
// 最初に InlineData を持つものを採用します（以降のパーツは無視します）。
func ParseToResponse(resp *genai.GenerateContentResponse) (*domain.ImageResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, domain.ErrNoImage
	}

	candidate := resp.Candidates[0]

	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &domain.ImageResponse{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
				}, nil
			}
		}
	}

	// 安全フィルター等によるブロックの確認
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("画像生成が異常終了しました (FinishReason: %s)", candidate.FinishReason)
	}

	return nil, domain.ErrNoImage
}
