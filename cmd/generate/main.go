// コマンドラインから1回分の画像生成を実行し、結果をPNGとして保存します。
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shouni/gemini-canvas-web/pkg/domain"
	"github.com/shouni/gemini-canvas-web/pkg/download"
	"github.com/shouni/gemini-canvas-web/pkg/generator"
)

const defaultModel = "gemini-2.5-flash-image-preview"

// filePresenter は生成結果をローカルファイルに書き出す Presenter です。
type filePresenter struct {
	prompt string
	output string
}

func (p *filePresenter) SetBusy(busy bool) {
	if busy {
		fmt.Println("生成中...")
	}
}

func (p *filePresenter) ShowImage(resp *domain.ImageResponse) {
	path := p.output
	if path == "" {
		path = download.SuggestFilename(p.prompt)
	}

	if err := os.WriteFile(path, resp.Data, 0644); err != nil {
		log.Printf("保存に失敗しました: %v", err)
		return
	}
	fmt.Printf("保存しました: %s (%s, %d bytes)\n", path, resp.MimeType, len(resp.Data))
}

func (p *filePresenter) ShowEmptyResult() {
	fmt.Println("画像が生成されませんでした。プロンプトを変えてもう一度お試しください。")
}

func (p *filePresenter) ShowError(err error) {
	log.Printf("生成に失敗しました: %v", err)
}

func main() {
	prompt := flag.String("prompt", "", "生成する画像のプロンプト")
	ratioText := flag.String("ratio", "1:1", "アスペクト比 (例: 16:9)")
	output := flag.String("out", "", "保存先ファイル名 (省略時はプロンプトから導出)")
	model := flag.String("model", defaultModel, "使用するモデル名")
	flag.Parse()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("環境変数 GEMINI_API_KEY が未設定です")
	}

	ratio, err := domain.ParseAspectRatio(*ratioText)
	if err != nil {
		log.Fatalf("アスペクト比の指定が不正です: %v", err)
	}

	ctx := context.Background()

	aiClient, err := generator.NewGeminiClient(ctx, apiKey)
	if err != nil {
		log.Fatalf("Geminiクライアントの初期化に失敗しました: %v", err)
	}

	wf, err := generator.NewWorkflow(aiClient, *model)
	if err != nil {
		log.Fatalf("ワークフローの初期化に失敗しました: %v", err)
	}

	p := &filePresenter{prompt: *prompt, output: *output}
	if state := wf.Generate(ctx, *prompt, ratio, p); state != generator.StateSucceeded {
		os.Exit(1)
	}
}
