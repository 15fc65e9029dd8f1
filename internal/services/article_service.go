package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/megahand-az/megahand-be/internal/models"
)

// ArticleInput carries the client-supplied fields for creating an article.
// The id and date columns are always server-assigned.
type ArticleInput struct {
	Title    string
	Summary  string
	Content  string
	ImageURL *string
	Status   string
}

// ArticleUpdate carries a partial update; nil fields are left untouched.
type ArticleUpdate struct {
	Title    *string
	Summary  *string
	Content  *string
	ImageURL *string
	Status   *string
}

// ArticleServiceProvider defines the interface for article services.
type ArticleServiceProvider interface {
	GetAllArticles() ([]models.Article, error)
	GetArticleByID(id int64) (models.Article, error)
	CreateArticle(input ArticleInput) (models.Article, error)
	UpdateArticle(id int64, update ArticleUpdate) (models.Article, error)
	DeleteArticle(id int64) error
}

// ArticleService provides business logic for article management.
type ArticleService struct {
	db *sql.DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *sql.DB) *ArticleService {
	return &ArticleService{db: db}
}

const articleColumns = "id, title, summary, content, image_url, date, status"

func scanArticle(row interface{ Scan(...any) error }) (models.Article, error) {
	var article models.Article
	err := row.Scan(&article.ID, &article.Title, &article.Summary, &article.Content,
		&article.ImageURL, &article.Date, &article.Status)
	return article, err
}

// GetAllArticles retrieves every article, newest first (descending id).
func (s *ArticleService) GetAllArticles() ([]models.Article, error) {
	rows, err := s.db.Query("SELECT " + articleColumns + " FROM articles ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []models.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// GetArticleByID retrieves a single article by its ID.
func (s *ArticleService) GetArticleByID(id int64) (models.Article, error) {
	row := s.db.QueryRow("SELECT "+articleColumns+" FROM articles WHERE id = ?", id)
	article, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Article{}, ErrNotFound
		}
		return models.Article{}, err
	}
	return article, nil
}

// CreateArticle inserts a new article, assigning its id and publication date.
func (s *ArticleService) CreateArticle(input ArticleInput) (models.Article, error) {
	if input.Status == "" {
		input.Status = models.ArticleStatusPublished
	}
	now := time.Now().UTC()

	stmt, err := s.db.Prepare("INSERT INTO articles(title, summary, content, image_url, date, status) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.Article{}, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(input.Title, input.Summary, input.Content, input.ImageURL, now, input.Status)
	if err != nil {
		return models.Article{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Article{}, err
	}
	return s.GetArticleByID(id)
}

// UpdateArticle applies a partial update to an existing article. The date
// column is never touched after creation.
func (s *ArticleService) UpdateArticle(id int64, update ArticleUpdate) (models.Article, error) {
	article, err := s.GetArticleByID(id)
	if err != nil {
		return models.Article{}, err
	}

	if update.Title != nil {
		article.Title = *update.Title
	}
	if update.Summary != nil {
		article.Summary = *update.Summary
	}
	if update.Content != nil {
		article.Content = *update.Content
	}
	if update.ImageURL != nil {
		article.ImageURL = update.ImageURL
	}
	if update.Status != nil {
		article.Status = *update.Status
	}

	stmt, err := s.db.Prepare("UPDATE articles SET title = ?, summary = ?, content = ?, image_url = ?, status = ? WHERE id = ?")
	if err != nil {
		return models.Article{}, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(article.Title, article.Summary, article.Content, article.ImageURL, article.Status, id); err != nil {
		return models.Article{}, err
	}
	return article, nil
}

// DeleteArticle removes an article. Returns ErrNotFound if no row existed.
func (s *ArticleService) DeleteArticle(id int64) error {
	res, err := s.db.Exec("DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
