package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// AspectRatio は「幅:高さ」の比率（例 16:9）を表す値オブジェクトです。
// 両成分とも正の整数であることを不変条件とします。
type AspectRatio struct {
	W int
	H int
}

// ParseAspectRatio は "16:9" 形式の文字列を検証付きで AspectRatio に変換します。
// 比率の検証はここで完結させ、後段の寸法導出には整形済みの値だけを渡します。
func ParseAspectRatio(s string) (AspectRatio, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return AspectRatio{}, fmt.Errorf("%w: %q", ErrInvalidAspectRatio, s)
	}

	w, errW := strconv.Atoi(parts[0])
	h, errH := strconv.Atoi(parts[1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return AspectRatio{}, fmt.Errorf("%w: %q", ErrInvalidAspectRatio, s)
	}

	return AspectRatio{W: w, H: h}, nil
}

// String は "W:H" 形式の表記を返します。
func (r AspectRatio) String() string {
	return fmt.Sprintf("%d:%d", r.W, r.H)
}

// CanvasRequest は単一の画像生成要求です。
type CanvasRequest struct {
	Prompt      string
	AspectRatio AspectRatio
}

// ImageResponse は生成された画像データとそのメタデータです。
type ImageResponse struct {
	Data     []byte
	MimeType string
}
