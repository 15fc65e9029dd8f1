package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/megahand-az/megahand-be/internal/models"
	"github.com/stretchr/testify/require"
)

// stubAPI is a minimal in-memory articles backend that counts list fetches.
type stubAPI struct {
	mu       sync.Mutex
	articles []models.Article
	nextID   int64
	listGets atomic.Int32
	delay    time.Duration
}

func newStubAPI() *stubAPI {
	return &stubAPI{nextID: 1}
}

func (s *stubAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/articles", func(w http.ResponseWriter, r *http.Request) {
		s.listGets.Add(1)
		// Snapshot before the delay: a slow response carries the data as it
		// was when the request arrived, not as it is when it completes.
		s.mu.Lock()
		snapshot := append([]models.Article(nil), s.articles...)
		s.mu.Unlock()
		time.Sleep(s.delay)
		json.NewEncoder(w).Encode(snapshot)
	})

	mux.HandleFunc("POST /api/articles", func(w http.ResponseWriter, r *http.Request) {
		var draft ArticleDraft
		json.NewDecoder(r.Body).Decode(&draft)
		s.mu.Lock()
		article := models.Article{ID: s.nextID, Title: draft.Title, Summary: draft.Summary, Content: draft.Content, Status: "published"}
		s.nextID++
		s.articles = append([]models.Article{article}, s.articles...)
		s.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(article)
	})

	mux.HandleFunc("DELETE /api/articles/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, a := range s.articles {
			if a.ID == id {
				s.articles = append(s.articles[:i], s.articles[i+1:]...)
				json.NewEncoder(w).Encode(map[string]string{"message": "deleted"})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Article not found"})
	})

	return mux
}

func newTestClient(t *testing.T, api *stubAPI) *Client {
	t.Helper()
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)
	c, err := New(server.URL)
	require.NoError(t, err)
	return c
}

func TestGet_CachesAcrossCalls(t *testing.T) {
	t.Parallel()
	api := newStubAPI()
	c := newTestClient(t, api)
	ctx := context.Background()

	_, err := c.Articles(ctx)
	require.NoError(t, err)
	_, err = c.Articles(ctx)
	require.NoError(t, err)

	require.Equal(t, int32(1), api.listGets.Load())
}

func TestGet_DeduplicatesConcurrentFetches(t *testing.T) {
	t.Parallel()
	api := newStubAPI()
	api.delay = 50 * time.Millisecond
	c := newTestClient(t, api)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Articles(context.Background())
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), api.listGets.Load())
}

func TestCreate_InvalidatesListAndNotifiesSubscribers(t *testing.T) {
	t.Parallel()
	api := newStubAPI()
	c := newTestClient(t, api)
	ctx := context.Background()

	articles, err := c.Articles(ctx)
	require.NoError(t, err)
	require.Empty(t, articles)

	updates := c.Subscribe("/api/articles")

	created, err := c.CreateArticle(ctx, ArticleDraft{Title: "t", Summary: "s", Content: "c"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	select {
	case <-updates:
	case <-time.After(2 * time.Second):
		t.Fatal("no invalidation signal after create")
	}

	articles, err = c.Articles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, created.ID, articles[0].ID)
}

func TestInvalidate_DiscardsFetchStartedBeforeMutation(t *testing.T) {
	t.Parallel()
	api := newStubAPI()
	api.delay = 300 * time.Millisecond
	c := newTestClient(t, api)
	ctx := context.Background()

	// Start a slow list fetch whose response will predate the create below.
	staleFetch := make(chan struct{})
	go func() {
		defer close(staleFetch)
		c.Articles(ctx)
	}()
	require.Eventually(t, func() bool {
		return api.listGets.Load() == 1
	}, time.Second, 5*time.Millisecond)

	updates := c.Subscribe("/api/articles")
	created, err := c.CreateArticle(ctx, ArticleDraft{Title: "t", Summary: "s", Content: "c"})
	require.NoError(t, err)

	select {
	case <-updates:
	case <-time.After(2 * time.Second):
		t.Fatal("no invalidation signal after create")
	}
	<-staleFetch

	// The pre-mutation response must not have been cached; the list now
	// reflects the create.
	articles, err := c.Articles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, created.ID, articles[0].ID)
}

func TestDelete_RefreshedListOmitsArticle(t *testing.T) {
	t.Parallel()
	api := newStubAPI()
	c := newTestClient(t, api)
	ctx := context.Background()

	created, err := c.CreateArticle(ctx, ArticleDraft{Title: "doomed", Summary: "s", Content: "c"})
	require.NoError(t, err)

	updates := c.Subscribe("/api/articles")
	require.NoError(t, c.DeleteArticle(ctx, created.ID))

	select {
	case <-updates:
	case <-time.After(2 * time.Second):
		t.Fatal("no invalidation signal after delete")
	}

	articles, err := c.Articles(ctx)
	require.NoError(t, err)
	require.Empty(t, articles)
}

func TestDelete_NotFoundError(t *testing.T) {
	t.Parallel()
	api := newStubAPI()
	c := newTestClient(t, api)

	err := c.DeleteArticle(context.Background(), 999)
	require.Error(t, err)
	require.True(t, IsStatus(err, http.StatusNotFound))
}
