package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/bookshop-service/internal/config"
	httpapi "github.com/fairyhunter13/bookshop-service/internal/http"
	"github.com/fairyhunter13/bookshop-service/internal/model"
	"github.com/fairyhunter13/bookshop-service/internal/obs"
	"github.com/fairyhunter13/bookshop-service/internal/store"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Load()
	obs.InitLogger(cfg.ServiceName, "error")
	srv := httptest.NewServer(httpapi.NewRouter(httpapi.NewApp(cfg, store.NewSeeded())))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp.StatusCode
}

func TestIntegration_CatalogScenario(t *testing.T) {
	srv := newServer(t)

	var one struct {
		Book model.Book `json:"book"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/books/2", &one))
	assert.Equal(t, 2, one.Book.ID)
	assert.Equal(t, "1984", one.Book.Title)
	assert.Equal(t, "George Orwell", one.Book.Author)
	assert.Equal(t, "14.99", one.Book.Price.String())
	assert.Equal(t, 32, one.Book.Stock)

	var missing map[string]string
	require.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/books/999", &missing))
	assert.Equal(t, "not_found", missing["error"])

	// the server keeps serving after a miss
	var health map[string]string
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/health", &health))

	var list struct {
		Books []model.Book `json:"books"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/books?author=orwell", &list))
	require.Len(t, list.Books, 1)
	assert.Equal(t, 2, list.Books[0].ID)

	list.Books = nil
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/books?min_price=13", &list))
	got := []int{}
	for _, b := range list.Books {
		got = append(got, b.ID)
	}
	assert.Equal(t, []int{2, 3}, got)
}

func TestIntegration_ConcurrentReads(t *testing.T) {
	srv := newServer(t)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Get(srv.URL + "/books")
			if err != nil {
				t.Errorf("get: %v", err)
				return
			}
			defer resp.Body.Close()
			var env struct {
				Books []model.Book `json:"books"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
				t.Errorf("decode: %v", err)
				return
			}
			if len(env.Books) != 5 {
				t.Errorf("expected 5 books, got %d", len(env.Books))
			}
		}()
	}
	wg.Wait()
}
