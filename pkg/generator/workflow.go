package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-canvas-web/pkg/domain"
	"github.com/shouni/gemini-canvas-web/pkg/placeholder"
)

// State はワークフローの状態です。UIのクラス操作ではなく
// 明示的な列挙で制御フローを表現します。
type State string

const (
	StateIdle        State = "idle"
	StateSubmitting  State = "submitting"
	StateSucceeded   State = "succeeded"
	StateEmptyResult State = "empty_result"
	StateFailed      State = "failed"
)

// Workflow はプロンプトとアスペクト比から画像を1枚生成する一連の流れを管理します。
// 1回の Generate につきリモート呼び出しは最大1回で、リトライもバックオフもありません。
type Workflow struct {
	aiClient GenerativeModel
	model    string
	state    State
}

// NewWorkflow は依存関係を注入して Workflow を初期化します。
func NewWorkflow(aiClient GenerativeModel, model string) (*Workflow, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	return &Workflow{
		aiClient: aiClient,
		model:    model,
		state:    StateIdle,
	}, nil
}

// State は現在の状態を返します。Generate の完了後は常に StateIdle に戻っています。
func (w *Workflow) State() State {
	return w.state
}

// Generate は1回分の生成を実行し、終端状態を返します。
// Presenter への副作用は ShowImage / ShowEmptyResult / ShowError のうち
// ちょうど1つだけで、送信中表示はどの経路でも必ず解除されます。
func (w *Workflow) Generate(ctx context.Context, promptText string, ratio domain.AspectRatio, p Presenter) State {
	prompt := strings.TrimSpace(promptText)
	if prompt == "" {
		// リモート呼び出しには進まない。送信中表示もまだ立てていない。
		w.state = StateFailed
		p.ShowError(domain.ErrEmptyPrompt)
		w.state = StateIdle
		return StateFailed
	}

	w.state = StateSubmitting
	p.SetBusy(true)
	defer func() {
		// 途中で panic しても送信中表示を残さない
		p.SetBusy(false)
		w.state = StateIdle
	}()

	canvas, err := placeholder.BuildPNG(ratio)
	if err != nil {
		w.state = StateFailed
		p.ShowError(err)
		return StateFailed
	}

	slog.InfoContext(ctx, "画像生成をリクエストします",
		"model", w.model, "aspect_ratio", ratio.String(), "canvas_bytes", len(canvas))

	parts := BuildParts(prompt, canvas)
	resp, err := w.aiClient.GenerateWithParts(ctx, w.model, parts)
	if err != nil {
		// 原因調査のため、エラー原文をそのまま利用者に見せる
		w.state = StateFailed
		p.ShowError(err)
		return StateFailed
	}

	out, err := ParseToResponse(resp)
	if err != nil {
		if errors.Is(err, domain.ErrNoImage) {
			w.state = StateEmptyResult
			p.ShowEmptyResult()
			return StateEmptyResult
		}
		w.state = StateFailed
		p.ShowError(err)
		return StateFailed
	}

	slog.InfoContext(ctx, "画像を受信しました", "mime_type", out.MimeType, "bytes", len(out.Data))

	w.state = StateSucceeded
	p.ShowImage(out)
	return StateSucceeded
}
