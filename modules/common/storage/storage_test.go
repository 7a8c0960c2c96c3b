package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"story-album-server/modules/common/config"
)

func TestUpload(t *testing.T) {
	var gotPath, gotAuth, gotType, gotUpsert string
	var gotLength int64
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotUpsert = r.Header.Get("x-upsert")
		gotLength = r.ContentLength
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Key":"story-album/images/a.webp"}`))
	}))
	defer server.Close()

	client := NewClient(&config.Config{
		SupabaseURL:        server.URL + "/",
		SupabaseServiceKey: "secret",
		SupabaseBucket:     "story-album",
	}, zerolog.Nop())

	url, err := client.Upload(context.Background(), "images/a.webp", "image/webp", strings.NewReader("webp-bytes"), int64(len("webp-bytes")))
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/story-album/images/a.webp", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "image/webp", gotType)
	assert.Equal(t, "false", gotUpsert)
	assert.Equal(t, "webp-bytes", string(gotBody))
	assert.Equal(t, int64(len("webp-bytes")), gotLength)
	assert.Equal(t, server.URL+"/storage/v1/object/public/story-album/images/a.webp", url)
}

func TestUpload_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Duplicate"}`))
	}))
	defer server.Close()

	client := NewClient(&config.Config{SupabaseURL: server.URL, SupabaseBucket: "story-album"}, zerolog.Nop())

	_, err := client.Upload(context.Background(), "videos/b.mp4", "video/mp4", strings.NewReader("x"), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")
	assert.Contains(t, err.Error(), "Duplicate")
}
