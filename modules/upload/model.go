package upload

import (
	"bytes"
	"io"

	"story-album-server/modules/common/model"
)

const (
	MaxFiles = 10

	MaxImageSize = 20 << 20
	MaxVideoSize = 100 << 20

	// 동시에 올리는 파일 수
	uploadConcurrency = 4
)

var imageContentTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

var videoContentTypes = map[string]string{
	"video/mp4":       "mp4",
	"video/quicktime": "mov",
	"video/webm":      "webm",
}

// File - 업로드 요청의 파일 하나
// 이미지는 WebP 변환을 위해 Data에 읽어 두고, 영상은 Open으로 업로드 시점에 스트리밍
type File struct {
	Name        string
	ContentType string
	Kind        model.MediaType
	Size        int64
	Data        []byte
	Open        func() (io.ReadCloser, error)
}

func (f File) size() int64 {
	if f.Open == nil {
		return int64(len(f.Data))
	}
	return f.Size
}

func (f File) body() (io.ReadCloser, error) {
	if f.Open == nil {
		return io.NopCloser(bytes.NewReader(f.Data)), nil
	}
	return f.Open()
}

// Response - POST /api/upload 응답 (urls는 기존 클라이언트 호환용)
type Response struct {
	URLs       []string          `json:"urls"`
	MediaItems []model.MediaItem `json:"mediaItems"`
}

// ValidationError - 400으로 내려갈 사용자 메시지
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
