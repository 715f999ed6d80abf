package utils

import (
	"bytes"
	"image"

	// 注册常见图片格式解码器，供 DecodeConfig 读取元数据
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"anime-gallery-server/internal/model"

	"github.com/disintegration/imaging"
)

// DetectOrientation 读取图片固有宽高并分类方向。
// 元数据无法解析时返回 unknown，不视为错误。
func DetectOrientation(data []byte) string {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return model.OrientationUnknown
	}
	switch {
	case cfg.Width > cfg.Height:
		return model.OrientationLandscape
	case cfg.Width < cfg.Height:
		return model.OrientationPortrait
	default:
		return model.OrientationSquare
	}
}

// FitPNG 将图片等比缩放到 bound×bound 以内并重编码为 PNG。
// 原图小于边界时不放大（imaging.Fit 只缩不放）。
func FitPNG(data []byte, bound int) ([]byte, error) {
	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	dst := imaging.Fit(src, bound, bound, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
