package generator

import (
	"context"

	"github.com/shouni/gemini-canvas-web/pkg/domain"
	"google.golang.org/genai"
)

// --- Mocks ---

// mockAIClient は GenerativeModel のテスト用モックなのだ。
type mockAIClient struct {
	generateFunc func(ctx context.Context, model string, parts []*genai.Part) (*genai.GenerateContentResponse, error)
	callCount    int
	lastParts    []*genai.Part
}

func (m *mockAIClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part) (*genai.GenerateContentResponse, error) {
	m.callCount++
	m.lastParts = parts
	if m.generateFunc != nil {
		return m.generateFunc(ctx, model, parts)
	}
	return inlineImageResponse("image/png", []byte("fake")), nil
}

// recordingPresenter は Presenter への副作用をすべて記録するのだ。
type recordingPresenter struct {
	busyHistory []bool
	images      []*domain.ImageResponse
	emptyCount  int
	errs        []error
}

func (p *recordingPresenter) SetBusy(busy bool) {
	p.busyHistory = append(p.busyHistory, busy)
}

func (p *recordingPresenter) ShowImage(resp *domain.ImageResponse) {
	p.images = append(p.images, resp)
}

func (p *recordingPresenter) ShowEmptyResult() {
	p.emptyCount++
}

func (p *recordingPresenter) ShowError(err error) {
	p.errs = append(p.errs, err)
}

// sideEffectCount は表示系の副作用の総数を返すのだ（常に1であるべき）。
func (p *recordingPresenter) sideEffectCount() int {
	return len(p.images) + p.emptyCount + len(p.errs)
}

// --- Response builders ---

func inlineImageResponse(mimeType string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{
					{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
				},
			},
		}},
	}
}

func textOnlyResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: text}},
			},
		}},
	}
}
