package services

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/megahand-az/megahand-be/internal/database"
	"github.com/megahand-az/megahand-be/internal/models"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func str(s string) *string { return &s }

func TestCreateArticle_AssignsServerFields(t *testing.T) {
	t.Parallel()
	svc := NewArticleService(newTestDB(t))

	article, err := svc.CreateArticle(ArticleInput{
		Title:   "First",
		Summary: "summary",
		Content: "content",
	})
	require.NoError(t, err)
	require.NotZero(t, article.ID)
	require.False(t, article.Date.IsZero())
	require.Equal(t, models.ArticleStatusPublished, article.Status)
}

func TestGetAllArticles_NewestFirstExactlyOnce(t *testing.T) {
	t.Parallel()
	svc := NewArticleService(newTestDB(t))

	first, err := svc.CreateArticle(ArticleInput{Title: "old", Summary: "s", Content: "c"})
	require.NoError(t, err)
	second, err := svc.CreateArticle(ArticleInput{Title: "new", Summary: "s", Content: "c"})
	require.NoError(t, err)

	articles, err := svc.GetAllArticles()
	require.NoError(t, err)
	require.Len(t, articles, 2)

	// Descending id order: the newest entry leads the list.
	require.Equal(t, second.ID, articles[0].ID)
	require.Equal(t, first.ID, articles[1].ID)

	seen := 0
	for _, a := range articles {
		if a.ID == second.ID {
			seen++
		}
	}
	require.Equal(t, 1, seen)
}

func TestUpdateArticle_PartialPatch(t *testing.T) {
	t.Parallel()
	svc := NewArticleService(newTestDB(t))

	created, err := svc.CreateArticle(ArticleInput{Title: "title", Summary: "summary", Content: "content"})
	require.NoError(t, err)

	updated, err := svc.UpdateArticle(created.ID, ArticleUpdate{Title: str("changed")})
	require.NoError(t, err)
	require.Equal(t, "changed", updated.Title)
	require.Equal(t, "summary", updated.Summary)
	require.Equal(t, created.Date.Unix(), updated.Date.Unix())
}

func TestUpdateArticle_MissingIDLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()
	svc := NewArticleService(newTestDB(t))

	_, err := svc.CreateArticle(ArticleInput{Title: "only", Summary: "s", Content: "c"})
	require.NoError(t, err)

	_, err = svc.UpdateArticle(9999, ArticleUpdate{Title: str("ghost")})
	require.ErrorIs(t, err, ErrNotFound)

	articles, err := svc.GetAllArticles()
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "only", articles[0].Title)
}

func TestDeleteArticle_Twice(t *testing.T) {
	t.Parallel()
	svc := NewArticleService(newTestDB(t))

	created, err := svc.CreateArticle(ArticleInput{Title: "doomed", Summary: "s", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteArticle(created.ID))
	require.ErrorIs(t, svc.DeleteArticle(created.ID), ErrNotFound)

	_, err = svc.GetArticleByID(created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetArticleByID_NotFound(t *testing.T) {
	t.Parallel()
	svc := NewArticleService(newTestDB(t))

	_, err := svc.GetArticleByID(42)
	require.ErrorIs(t, err, ErrNotFound)
}
