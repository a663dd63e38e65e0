package placeholder

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/shouni/gemini-canvas-web/pkg/domain"
)

func TestDimensions(t *testing.T) {
	tests := []struct {
		name  string
		ratio domain.AspectRatio
		wantW int
		wantH int
	}{
		{"横長 16:9", domain.AspectRatio{W: 16, H: 9}, 512, 288},
		{"縦長 9:16", domain.AspectRatio{W: 9, H: 16}, 288, 512},
		{"正方形 1:1", domain.AspectRatio{W: 1, H: 1}, 512, 512},
		{"横長 4:3", domain.AspectRatio{W: 4, H: 3}, 512, 384},
		{"縦長 3:4", domain.AspectRatio{W: 3, H: 4}, 384, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Dimensions(tt.ratio)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("got (%d, %d), want (%d, %d)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

// 任意の正当な比率で「長辺=512、比率誤差は丸め1px以内」が成り立つことを確認するのだ。
func TestDimensions_Properties(t *testing.T) {
	for rw := 1; rw <= 21; rw++ {
		for rh := 1; rh <= 21; rh++ {
			w, h := Dimensions(domain.AspectRatio{W: rw, H: rh})

			if max(w, h) != MaxDimension {
				t.Fatalf("%d:%d: 長辺が %d ではなく (%d, %d) になったのだ", rw, rh, MaxDimension, w, h)
			}
			if w < 1 || h < 1 {
				t.Fatalf("%d:%d: 寸法が1px未満なのだ (%d, %d)", rw, rh, w, h)
			}

			// 短辺を比率から逆算し、丸め誤差1px以内であることを確かめる
			var exact float64
			var got int
			if rw >= rh {
				exact = MaxDimension * float64(rh) / float64(rw)
				got = h
			} else {
				exact = MaxDimension * float64(rw) / float64(rh)
				got = w
			}
			if math.Abs(float64(got)-exact) > 1 {
				t.Errorf("%d:%d: 短辺 %d が理論値 %.2f から1px超ずれているのだ", rw, rh, got, exact)
			}
		}
	}
}

func TestBuildPNG(t *testing.T) {
	t.Run("デコード可能なPNGで、寸法が導出値と一致するのだ", func(t *testing.T) {
		data, err := BuildPNG(domain.AspectRatio{W: 16, H: 9})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("出力がPNGとしてデコードできないのだ: %v", err)
		}
		if cfg.Width != 512 || cfg.Height != 288 {
			t.Errorf("got (%d, %d), want (512, 288)", cfg.Width, cfg.Height)
		}
	})

	t.Run("キャンバスは単色で塗りつぶされているのだ", func(t *testing.T) {
		data, err := BuildPNG(domain.AspectRatio{W: 1, H: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("failed to decode output: %v", err)
		}

		bounds := img.Bounds()
		corners := [][2]int{
			{bounds.Min.X, bounds.Min.Y},
			{bounds.Max.X - 1, bounds.Max.Y - 1},
			{bounds.Dx() / 2, bounds.Dy() / 2},
		}
		wantR, wantG, wantB, wantA := canvasColor.RGBA()
		for _, c := range corners {
			r, g, b, a := img.At(c[0], c[1]).RGBA()
			if r != wantR || g != wantG || b != wantB || a != wantA {
				t.Errorf("(%d, %d) の色が塗りつぶし色と異なるのだ", c[0], c[1])
			}
		}
	})
}
