package upload

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"story-album-server/modules/common/model"
	"story-album-server/modules/common/response"
)

// multipart 메모리 버퍼 (넘치면 임시 파일)
const maxMemory = 32 << 20

// 요청 전체 상한: 영상 최대치 * 파일 수 + 여유분
const maxRequestBytes = MaxVideoSize*MaxFiles + (1 << 20)

type Handler struct {
	service *Service
	logger  zerolog.Logger
}

func NewHandler(service *Service, logger zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/upload", h.HandleUpload).Methods("POST", "OPTIONS")
}

// HandleUpload - POST /api/upload (multipart: files, types)
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		h.logger.Warn().Err(err).Msg("❌ [Upload] Invalid multipart body")
		response.Error(w, http.StatusBadRequest, "잘못된 요청 형식입니다")
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	types := r.MultipartForm.Value["types"]

	if len(headers) > MaxFiles {
		response.Error(w, http.StatusBadRequest, fmt.Sprintf("최대 %d개의 파일만 업로드할 수 있습니다", MaxFiles))
		return
	}

	files := make([]File, 0, len(headers))
	for i, fh := range headers {
		declared := ""
		if i < len(types) {
			declared = types[i]
		}

		f, err := readFile(fh, declared)
		if err != nil {
			h.logger.Error().Err(err).Str("file", fh.Filename).Msg("❌ [Upload] Failed to read file")
			response.Error(w, http.StatusBadRequest, "파일을 읽을 수 없습니다")
			return
		}
		files = append(files, f)
	}

	result, err := h.service.UploadAll(r.Context(), files)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			response.Error(w, http.StatusBadRequest, verr.Message)
			return
		}
		h.logger.Error().Err(err).Msg("❌ [Upload] Upload failed")
		response.Error(w, http.StatusInternalServerError, "업로드 중 오류가 발생했습니다")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// readFile - 이미지는 크기 상한 + 1까지 읽어 두고, 영상은 임시 파일에서 스트리밍하도록 열기 함수만 남김
func readFile(fh *multipart.FileHeader, declared string) (File, error) {
	contentType := fh.Header.Get("Content-Type")
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = parsed
	}

	f := File{
		Name: fh.Filename,
		Kind: ResolveKind(declared, contentType),
		Size: fh.Size,
	}

	if f.Kind == model.MediaVideo {
		f.Open = func() (io.ReadCloser, error) {
			return fh.Open()
		}
		if needsSniff(contentType) {
			head, err := readHead(fh)
			if err != nil {
				return File{}, err
			}
			contentType = sniff(head)
		}
		f.ContentType = contentType
		return f, nil
	}

	src, err := fh.Open()
	if err != nil {
		return File{}, err
	}
	defer src.Close()

	f.Data, err = io.ReadAll(io.LimitReader(src, MaxImageSize+1))
	if err != nil {
		return File{}, err
	}

	if needsSniff(contentType) {
		contentType = sniff(f.Data)
	}
	f.ContentType = contentType
	return f, nil
}

func needsSniff(contentType string) bool {
	return contentType == "" || contentType == "application/octet-stream"
}

func sniff(data []byte) string {
	contentType, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return contentType
}

// readHead - 형식 판별용 앞부분 512바이트
func readHead(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return head[:n], nil
}
