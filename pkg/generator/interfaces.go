package generator

import (
	"context"

	"github.com/shouni/gemini-canvas-web/pkg/domain"
	"google.golang.org/genai"
)

// GenerativeModel は Gemini との通信を抽象化するインターフェースです。
// リトライやタイムアウトは持たず、1回の呼び出しは1回のAPI呼び出しに対応します。
type GenerativeModel interface {
	GenerateWithParts(ctx context.Context, model string, parts []*genai.Part) (*genai.GenerateContentResponse, error)
}

// Presenter は生成結果を表示面（Web・CLI等）へ届けるためのインターフェースです。
// Workflow は1回の Generate につき ShowImage / ShowEmptyResult / ShowError の
// いずれか1つだけを必ず呼び出します。
type Presenter interface {
	// SetBusy は送信中表示の切り替えを通知します。成功・失敗を問わず必ず解除されます。
	SetBusy(busy bool)
	// ShowImage は生成画像の表示（とダウンロード有効化）を指示します。
	ShowImage(resp *domain.ImageResponse)
	// ShowEmptyResult は「画像が返らなかった」旨の表示を指示します。
	ShowEmptyResult()
	// ShowError はエラー表示を指示します。リモート起因のエラーは原文のまま渡されます。
	ShowError(err error)
}
