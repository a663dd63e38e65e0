package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/shouni/gemini-canvas-web/pkg/generator"
	"github.com/shouni/gemini-canvas-web/pkg/web"
)

const defaultModel = "gemini-2.5-flash-image-preview"

func main() {
	ctx := context.Background()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("環境変数 GEMINI_API_KEY が未設定です")
	}

	model := os.Getenv("GEMINI_IMAGE_MODEL")
	if model == "" {
		model = defaultModel
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	aiClient, err := generator.NewGeminiClient(ctx, apiKey)
	if err != nil {
		log.Fatalf("Geminiクライアントの初期化に失敗しました: %v", err)
	}

	handler, err := web.NewHandler(aiClient, model)
	if err != nil {
		log.Fatalf("ハンドラの初期化に失敗しました: %v", err)
	}

	log.Printf("[boot] model=%s port=%s", model, port)

	if err := http.ListenAndServe(":"+port, handler.Router()); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
