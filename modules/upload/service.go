package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"story-album-server/modules/common/model"
	"story-album-server/modules/common/utils"
)

// Uploader - 객체 저장소 (storage.Client가 구현)
type Uploader interface {
	Upload(ctx context.Context, objectPath, contentType string, body io.Reader, size int64) (string, error)
}

type Service struct {
	uploader Uploader
	convert  func(data []byte, quality float32) ([]byte, error)
	now      func() time.Time
	newID    func() string
	logger   zerolog.Logger
}

func NewService(uploader Uploader, logger zerolog.Logger) *Service {
	return &Service{
		uploader: uploader,
		convert:  utils.ConvertToWebP,
		now:      time.Now,
		newID:    uuid.NewString,
		logger:   logger,
	}
}

// ResolveKind - types 값이 있으면 그대로, 없으면 content-type으로 판단
func ResolveKind(declared, contentType string) model.MediaType {
	switch model.MediaType(declared) {
	case model.MediaImage, model.MediaVideo:
		return model.MediaType(declared)
	}
	if strings.HasPrefix(contentType, "video/") {
		return model.MediaVideo
	}
	return model.MediaImage
}

// Validate - 개수/형식/크기 검증 (하나라도 틀리면 아무것도 올리지 않음)
func Validate(files []File) error {
	if len(files) == 0 {
		return &ValidationError{Message: "파일이 없습니다"}
	}
	if len(files) > MaxFiles {
		return &ValidationError{Message: fmt.Sprintf("최대 %d개의 파일만 업로드할 수 있습니다", MaxFiles)}
	}

	for _, f := range files {
		if f.Kind == model.MediaVideo {
			if _, ok := videoContentTypes[f.ContentType]; !ok {
				return &ValidationError{Message: fmt.Sprintf("지원하지 않는 영상 형식입니다: %s", f.ContentType)}
			}
			if f.size() > MaxVideoSize {
				return &ValidationError{Message: "영상 파일 크기는 100MB 이하여야 합니다"}
			}
			continue
		}

		if _, ok := imageContentTypes[f.ContentType]; !ok {
			return &ValidationError{Message: fmt.Sprintf("지원하지 않는 이미지 형식입니다: %s", f.ContentType)}
		}
		if f.size() > MaxImageSize {
			return &ValidationError{Message: "이미지 파일 크기는 20MB 이하여야 합니다"}
		}
	}
	return nil
}

// UploadAll - 검증 후 병렬 업로드, 결과 순서는 입력 순서와 같음
func (s *Service) UploadAll(ctx context.Context, files []File) (*Response, error) {
	if err := Validate(files); err != nil {
		return nil, err
	}

	items := make([]model.MediaItem, len(files))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(uploadConcurrency)

	for i, f := range files {
		eg.Go(func() error {
			url, err := s.uploadOne(egCtx, f)
			if err != nil {
				return fmt.Errorf("file %d (%s): %w", i, f.Name, err)
			}
			items[i] = model.MediaItem{URL: url, Type: f.Kind}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	urls := make([]string, len(items))
	for i, item := range items {
		urls[i] = item.URL
	}

	s.logger.Info().Int("files", len(files)).Msg("✅ [Upload] Media uploaded")
	return &Response{URLs: urls, MediaItems: items}, nil
}

func (s *Service) uploadOne(ctx context.Context, f File) (string, error) {
	if f.Kind == model.MediaVideo {
		body, err := f.body()
		if err != nil {
			return "", fmt.Errorf("open: %w", err)
		}
		defer body.Close()

		path := s.objectPath(f.Kind, videoContentTypes[f.ContentType])
		return s.uploader.Upload(ctx, path, f.ContentType, body, f.size())
	}

	data, contentType, ext := f.Data, f.ContentType, imageContentTypes[f.ContentType]
	if f.ContentType != "image/webp" {
		webpData, err := s.convert(f.Data, utils.DefaultWebPQuality)
		if err != nil {
			// 변환 실패 시 원본 그대로 업로드
			s.logger.Warn().Err(err).Str("file", f.Name).Msg("⚠️ [Upload] WebP conversion failed, uploading original")
		} else {
			data, contentType, ext = webpData, "image/webp", "webp"
		}
	}

	return s.uploader.Upload(ctx, s.objectPath(f.Kind, ext), contentType, bytes.NewReader(data), int64(len(data)))
}

// objectPath - images/<unixms>-<uuid>.<ext> 또는 videos/...
func (s *Service) objectPath(kind model.MediaType, ext string) string {
	folder := "images"
	if kind == model.MediaVideo {
		folder = "videos"
	}
	return fmt.Sprintf("%s/%d-%s.%s", folder, s.now().UnixMilli(), s.newID(), ext)
}
