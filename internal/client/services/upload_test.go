package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/allodocta/backoffice/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadFixture(t *testing.T, handler http.HandlerFunc) UploadService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewUploadService(srv.URL, "backoffice-preset", 5*time.Second, newTestLogger())
}

func TestUpload_SendsMultipartAndReturnsURL(t *testing.T) {
	s := newUploadFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "backoffice-preset", r.FormValue("upload_preset"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "banner.png", header.Filename)

		w.Write([]byte(`{"secure_url":"https://media.example/banner.png"}`))
	})

	url, err := s.Upload(context.Background(), "banner.png", strings.NewReader("fake-image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://media.example/banner.png", url)
}

func TestUpload_MissingURL_UploadError(t *testing.T) {
	s := newUploadFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"Invalid preset"}}`))
	})

	_, err := s.Upload(context.Background(), "banner.png", strings.NewReader("x"))

	var upErr *common.UploadError
	require.ErrorAs(t, err, &upErr)
}

func TestUpload_TransportFailure_UploadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	s := NewUploadService(srv.URL, "p", time.Second, newTestLogger())

	_, err := s.Upload(context.Background(), "f.png", strings.NewReader("x"))

	var upErr *common.UploadError
	require.ErrorAs(t, err, &upErr)
}
