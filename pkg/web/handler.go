package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/shouni/gemini-canvas-web/pkg/domain"
	"github.com/shouni/gemini-canvas-web/pkg/download"
	"github.com/shouni/gemini-canvas-web/pkg/generator"
)

// Handler は単一ページと生成APIを提供するHTTP層です。
// リクエストごとに独立した Workflow を組み立てるため、リクエスト間で
// 共有する可変状態はありません。多重送信の抑止はページ側のボタン無効化が担います。
type Handler struct {
	aiClient generator.GenerativeModel
	model    string
}

// NewHandler は依存関係を注入して Handler を初期化します。
func NewHandler(aiClient generator.GenerativeModel, model string) (*Handler, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	return &Handler{aiClient: aiClient, model: model}, nil
}

// Router はルーティングを構築して返します。
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.HandleIndex).Methods("GET")
	r.HandleFunc("/api/generate", h.HandleGenerate).Methods("POST")
	r.HandleFunc("/healthz", h.HandleHealth).Methods("GET")
	return r
}

// HandleIndex は埋め込みの単一ページを返します。
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

// HandleHealth は死活監視用のエンドポイントです。
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type generateRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
}

type generateResponse struct {
	Status   string `json:"status"` // succeeded / empty / failed
	Image    string `json:"image,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	Filename string `json:"filename,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// HandleGenerate は1回分の画像生成を実行してJSONで結果を返します。
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(r.Context(), "リクエストボディの解釈に失敗しました", "request_id", requestID, "error", err)
		writeJSON(w, http.StatusBadRequest, generateResponse{Status: "failed", Error: "不正なリクエスト形式です"})
		return
	}

	ratio, err := domain.ParseAspectRatio(req.AspectRatio)
	if err != nil {
		// 比率は固定候補からの選択のため、ここに来るのはクライアント側の不具合
		slog.WarnContext(r.Context(), "不正なアスペクト比指定です", "request_id", requestID, "aspect_ratio", req.AspectRatio)
		writeJSON(w, http.StatusBadRequest, generateResponse{Status: "failed", Error: err.Error()})
		return
	}

	slog.InfoContext(r.Context(), "生成リクエストを受け付けました",
		"request_id", requestID, "aspect_ratio", ratio.String(), "prompt_len", len(req.Prompt))

	wf, err := generator.NewWorkflow(h.aiClient, h.model)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, generateResponse{Status: "failed", Error: err.Error()})
		return
	}

	p := &apiPresenter{prompt: req.Prompt}
	state := wf.Generate(r.Context(), req.Prompt, ratio, p)

	slog.InfoContext(r.Context(), "生成リクエストが完了しました", "request_id", requestID, "state", string(state))
	writeJSON(w, http.StatusOK, p.result)
}

func writeJSON(w http.ResponseWriter, status int, body generateResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// apiPresenter は Workflow の結果を1件のJSONレスポンスとして記録する Presenter です。
type apiPresenter struct {
	prompt string
	result generateResponse
}

// SetBusy は何もしません。HTTPでは1リクエストが1生成に対応し、
// 送信中表示はページ側のボタン無効化で表現されるためです。
func (p *apiPresenter) SetBusy(busy bool) {}

func (p *apiPresenter) ShowImage(resp *domain.ImageResponse) {
	p.result = generateResponse{
		Status:   "succeeded",
		Image:    download.DataURI(resp.MimeType, resp.Data),
		MimeType: resp.MimeType,
		Filename: download.SuggestFilename(p.prompt),
	}
}

func (p *apiPresenter) ShowEmptyResult() {
	p.result = generateResponse{
		Status:  "empty",
		Message: "画像が生成されませんでした。プロンプトを変えてもう一度お試しください。",
	}
}

func (p *apiPresenter) ShowError(err error) {
	res := generateResponse{Status: "failed", Error: err.Error()}
	if errors.Is(err, domain.ErrEmptyPrompt) {
		res.Error = "プロンプトを入力してください"
	}
	p.result = res
}
