package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/allodocta/backoffice/internal/common"
	"github.com/allodocta/backoffice/internal/logging"
	json "github.com/goccy/go-json"
)

// UploadService pushes media files to the third-party upload endpoint and
// returns the public URL used as the img field of ads, articles and
// notifications. The endpoint is preset-authenticated, not token-
// authenticated, so it bypasses the api client entirely.
type UploadService interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

type uploadService struct {
	uploadURL string
	preset    string
	http      *http.Client
	log       logging.Logger
}

func NewUploadService(uploadURL, preset string, timeout time.Duration, log logging.Logger) UploadService {
	return &uploadService{
		uploadURL: uploadURL,
		preset:    preset,
		http:      &http.Client{Timeout: timeout},
		log:       log.With("component", "upload"),
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

func (s *uploadService) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", &common.UploadError{Message: "Erreur lors de l'upload du média"}
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", &common.UploadError{Message: "Erreur lors de l'upload du média"}
	}
	if err := w.WriteField("upload_preset", s.preset); err != nil {
		return "", &common.UploadError{Message: "Erreur lors de l'upload du média"}
	}
	if err := w.Close(); err != nil {
		return "", &common.UploadError{Message: "Erreur lors de l'upload du média"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, &buf)
	if err != nil {
		return "", &common.UploadError{Message: "Erreur lors de l'upload du média"}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := s.http.Do(req)
	if err != nil {
		s.log.Warn(ctx, "upload request failed", "err", err)
		return "", &common.UploadError{Message: "Erreur lors de l'upload du média"}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &common.UploadError{Message: "Erreur lors de l'upload du média"}
	}

	var out uploadResponse
	if err := json.Unmarshal(data, &out); err != nil || out.SecureURL == "" {
		return "", &common.UploadError{Message: "L'upload n'a pas retourné d'URL exploitable"}
	}

	return out.SecureURL, nil
}
