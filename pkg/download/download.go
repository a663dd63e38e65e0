package download

import (
	"encoding/base64"
	"regexp"
	"strings"
)

// DefaultFilename は保存名を導出できない場合に使う既定のファイル名です。
const DefaultFilename = "generated-image.png"

// maxBaseLength は保存名の基底部に採用するプロンプトの先頭文字数です。
const maxBaseLength = 30

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]`)

// SuggestFilename はプロンプトの先頭30文字から保存用ファイル名を組み立てます。
// 英数字以外は "_" に置き換え、".png" を付けて返します。
// 基底部が作れない場合は DefaultFilename を返します。
func SuggestFilename(prompt string) string {
	base := strings.TrimSpace(prompt)
	if base == "" {
		return DefaultFilename
	}

	runes := []rune(base)
	if len(runes) > maxBaseLength {
		runes = runes[:maxBaseLength]
	}

	sanitized := nonAlphanumeric.ReplaceAllString(string(runes), "_")
	if strings.Trim(sanitized, "_") == "" {
		return DefaultFilename
	}

	return sanitized + ".png"
}

// DataURI は画像ペイロードをブラウザのダウンロードアンカーで使える data URI に変換します。
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
