package domain

import "errors"

// ワークフロー全体で共有するエラー分類です。
// リモート呼び出し自体の失敗は分類せず、発生したエラーの原文を
// そのまま %w で包んで利用者に見せる方針です。
var (
	// ErrEmptyPrompt は空（または空白のみ）のプロンプトを表します。
	// このエラーの場合、リモート呼び出しは一切行われません。
	ErrEmptyPrompt = errors.New("プロンプトが空です")

	// ErrInvalidAspectRatio は不正なアスペクト比指定を表します。
	ErrInvalidAspectRatio = errors.New("不正なアスペクト比です")

	// ErrNoImage は生成呼び出しは成功したが画像が返らなかったことを表します。
	ErrNoImage = errors.New("画像データが見つかりませんでした")
)
