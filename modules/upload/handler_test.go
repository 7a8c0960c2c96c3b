package upload

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"story-album-server/modules/common/model"
)

type part struct {
	name        string
	contentType string
	data        []byte
	kind        string
}

func multipartRequest(t *testing.T, parts []part) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	for _, p := range parts {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="files"; filename="`+p.name+`"`)
		header.Set("Content-Type", p.contentType)
		fw, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = fw.Write(p.data)
		require.NoError(t, err)
	}
	for _, p := range parts {
		if p.kind != "" {
			require.NoError(t, mw.WriteField("types", p.kind))
		}
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func setupRouter(uploader Uploader) *mux.Router {
	r := mux.NewRouter()
	NewHandler(newTestService(uploader, fakeWebP), zerolog.Nop()).RegisterRoutes(r)
	return r
}

func TestHandleUpload_Success(t *testing.T) {
	uploader := &fakeUploader{}
	router := setupRouter(uploader)

	req := multipartRequest(t, []part{
		{name: "a.jpg", contentType: "image/jpeg", data: []byte("jpeg"), kind: "image"},
		{name: "b.mp4", contentType: "video/mp4", data: []byte("mp4"), kind: "video"},
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.MediaItems, 2)
	assert.Equal(t, model.MediaImage, resp.MediaItems[0].Type)
	assert.Equal(t, model.MediaVideo, resp.MediaItems[1].Type)
	assert.Equal(t, []string{resp.MediaItems[0].URL, resp.MediaItems[1].URL}, resp.URLs)
}

func TestReadFile_VideoIsOpenedLazily(t *testing.T) {
	req := multipartRequest(t, []part{
		{name: "clip.mp4", contentType: "application/octet-stream", data: mp4Header(), kind: "video"},
		{name: "a.jpg", contentType: "image/jpeg", data: []byte("jpeg")},
	})
	require.NoError(t, req.ParseMultipartForm(maxMemory))
	defer req.MultipartForm.RemoveAll()

	headers := req.MultipartForm.File["files"]
	video, err := readFile(headers[0], "video")
	require.NoError(t, err)
	assert.Nil(t, video.Data)
	require.NotNil(t, video.Open)
	assert.Equal(t, "video/mp4", video.ContentType)
	assert.Equal(t, int64(len(mp4Header())), video.Size)

	rc, err := video.Open()
	require.NoError(t, err)
	streamed, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, mp4Header(), streamed)

	img, err := readFile(headers[1], "")
	require.NoError(t, err)
	assert.Nil(t, img.Open)
	assert.Equal(t, []byte("jpeg"), img.Data)
}

// mp4Header - http.DetectContentType이 video/mp4로 판별하는 ftyp 박스
func mp4Header() []byte {
	return []byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom")
}

func TestHandleUpload_Errors(t *testing.T) {
	tests := []struct {
		name    string
		parts   []part
		wantMsg string
	}{
		{name: "no files", parts: nil, wantMsg: "파일이 없습니다"},
		{name: "unsupported image", parts: []part{{name: "a.gif", contentType: "image/gif", data: []byte("gif")}}, wantMsg: "지원하지 않는 이미지 형식입니다: image/gif"},
		{name: "declared video with image type", parts: []part{{name: "a.png", contentType: "image/png", data: []byte("png"), kind: "video"}}, wantMsg: "지원하지 않는 영상 형식입니다: image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uploader := &fakeUploader{}
			w := httptest.NewRecorder()
			setupRouter(uploader).ServeHTTP(w, multipartRequest(t, tt.parts))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp["error"])
			assert.Empty(t, uploader.calls)
		})
	}
}

func TestHandleUpload_StorageFailure(t *testing.T) {
	router := setupRouter(&fakeUploader{failOn: "mp4"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, []part{{name: "b.mp4", contentType: "video/mp4", data: []byte("mp4")}}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
