package placeholder

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/shouni/gemini-canvas-web/pkg/domain"
)

// MaxDimension は生成するキャンバスの長辺ピクセル数です。
// モデルにはこのキャンバスの縦横比だけを伝えればよいため、512px に固定しています。
const MaxDimension = 512

// canvasColor はキャンバスの塗りつぶし色（単色・白）です。
var canvasColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Dimensions はアスペクト比から長辺 MaxDimension のピクセル寸法を算出します。
// 短辺は比例配分して四捨五入し、最低 1px を保証します。
// 成分が 0 の比率は ParseAspectRatio で弾かれている前提であり、ここでは検査しません。
func Dimensions(ratio domain.AspectRatio) (int, int) {
	if ratio.W >= ratio.H {
		h := int(math.Round(MaxDimension * float64(ratio.H) / float64(ratio.W)))
		if h < 1 {
			h = 1
		}
		return MaxDimension, h
	}

	w := int(math.Round(MaxDimension * float64(ratio.W) / float64(ratio.H)))
	if w < 1 {
		w = 1
	}
	return w, MaxDimension
}

// BuildPNG は指定比率の単色キャンバスを PNG エンコードして返します。
// 返すのは生のエンコード済みバイト列のみで、data URI 等の包装は付けません。
// エンコードに失敗した場合は環境異常としてエラーを返します。
func BuildPNG(ratio domain.AspectRatio) ([]byte, error) {
	width, height := Dimensions(ratio)

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rgba.Set(x, y, canvasColor)
		}
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, rgba); err != nil {
		return nil, fmt.Errorf("キャンバスのPNGエンコードに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}
