package services

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/allodocta/backoffice/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications_Paginated(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/notifications", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Write([]byte(`{
			"success": true,
			"data": [{"_id":"n1","title":"Maintenance"}],
			"meta": {"page":2,"limit":5,"totalPages":3,"totalItems":11}
		}`))
	})

	s := NewResourceService(newAPIClient(t, mux))

	notifications, meta, err := s.Notifications(context.Background(), 5, 2)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Maintenance", notifications[0].Title)
	require.NotNil(t, meta)
	assert.Equal(t, 11, meta.TotalItems)
}

func TestCreateAd_PostsPayload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ads-create", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"websiteLink":"https://acme.example"`)
		w.Write([]byte(`{"success":true,"message":"publicité créée"}`))
	})

	s := NewResourceService(newAPIClient(t, mux))

	msg, err := s.CreateAd(context.Background(), models.AdPayload{
		Label:       "Acme",
		Img:         "https://media.example/acme.png",
		Company:     "Acme",
		Description: "desc",
		WebsiteLink: "https://acme.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "publicité créée", msg)
}

func TestDeleteArticle_ReturnsMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/articles-delete", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "art1", r.URL.Query().Get("id"))
		w.Write([]byte(`{"success":true,"message":"article supprimé"}`))
	})

	s := NewResourceService(newAPIClient(t, mux))

	msg, err := s.DeleteArticle(context.Background(), "art1")
	require.NoError(t, err)
	assert.Equal(t, "article supprimé", msg)
}
