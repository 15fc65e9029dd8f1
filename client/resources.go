package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/megahand-az/megahand-be/internal/models"
)

// Cache keys mirror the API route paths.
const (
	articlesKey  = "/api/articles"
	locationsKey = "/api/locations"
)

func articleKey(id int64) string  { return fmt.Sprintf("/api/articles/%d", id) }
func locationKey(id int64) string { return fmt.Sprintf("/api/locations/%d", id) }

// ArticleDraft is the body for creating an article.
type ArticleDraft struct {
	Title    string  `json:"title"`
	Summary  string  `json:"summary"`
	Content  string  `json:"content"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Status   string  `json:"status,omitempty"`
}

// ArticlePatch is a partial article update; nil fields are omitted.
type ArticlePatch struct {
	Title    *string `json:"title,omitempty"`
	Summary  *string `json:"summary,omitempty"`
	Content  *string `json:"content,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// LocationDraft is the body for creating a location.
type LocationDraft struct {
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	ZipCode          *string `json:"zipCode,omitempty"`
	Description      string  `json:"description"`
	ImageURL         *string `json:"imageUrl,omitempty"`
	PhoneNumber      *string `json:"phoneNumber,omitempty"`
	InstagramAccount *string `json:"instagramAccount,omitempty"`
	WhatsappNumber   *string `json:"whatsappNumber,omitempty"`
	Latitude         *string `json:"latitude,omitempty"`
	Longitude        *string `json:"longitude,omitempty"`
	Status           string  `json:"status,omitempty"`
}

// LocationPatch is a partial location update; nil fields are omitted.
type LocationPatch struct {
	Name             *string `json:"name,omitempty"`
	Address          *string `json:"address,omitempty"`
	ZipCode          *string `json:"zipCode,omitempty"`
	Description      *string `json:"description,omitempty"`
	ImageURL         *string `json:"imageUrl,omitempty"`
	PhoneNumber      *string `json:"phoneNumber,omitempty"`
	InstagramAccount *string `json:"instagramAccount,omitempty"`
	WhatsappNumber   *string `json:"whatsappNumber,omitempty"`
	Latitude         *string `json:"latitude,omitempty"`
	Longitude        *string `json:"longitude,omitempty"`
	Status           *string `json:"status,omitempty"`
}

// Articles lists all articles (cached).
func (c *Client) Articles(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := c.getJSON(ctx, articlesKey, &articles)
	return articles, err
}

// Article fetches a single article (cached).
func (c *Client) Article(ctx context.Context, id int64) (models.Article, error) {
	var article models.Article
	err := c.getJSON(ctx, articleKey(id), &article)
	return article, err
}

// CreateArticle creates an article and invalidates the list key.
func (c *Client) CreateArticle(ctx context.Context, draft ArticleDraft) (models.Article, error) {
	var article models.Article
	data, err := c.do(ctx, http.MethodPost, articlesKey, draft)
	if err != nil {
		return article, err
	}
	if err := unmarshal(data, &article); err != nil {
		return article, err
	}
	c.Invalidate(articlesKey)
	return article, nil
}

// UpdateArticle patches an article and invalidates the list and detail keys.
func (c *Client) UpdateArticle(ctx context.Context, id int64, patch ArticlePatch) (models.Article, error) {
	var article models.Article
	data, err := c.do(ctx, http.MethodPut, articleKey(id), patch)
	if err != nil {
		return article, err
	}
	if err := unmarshal(data, &article); err != nil {
		return article, err
	}
	c.Invalidate(articlesKey, articleKey(id))
	return article, nil
}

// DeleteArticle deletes an article and invalidates the list and detail keys.
func (c *Client) DeleteArticle(ctx context.Context, id int64) error {
	if _, err := c.do(ctx, http.MethodDelete, articleKey(id), nil); err != nil {
		return err
	}
	c.Invalidate(articlesKey, articleKey(id))
	return nil
}

// Locations lists all store locations (cached).
func (c *Client) Locations(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	err := c.getJSON(ctx, locationsKey, &locations)
	return locations, err
}

// Location fetches a single store location (cached).
func (c *Client) Location(ctx context.Context, id int64) (models.Location, error) {
	var location models.Location
	err := c.getJSON(ctx, locationKey(id), &location)
	return location, err
}

// CreateLocation creates a location and invalidates the list key.
func (c *Client) CreateLocation(ctx context.Context, draft LocationDraft) (models.Location, error) {
	var location models.Location
	data, err := c.do(ctx, http.MethodPost, locationsKey, draft)
	if err != nil {
		return location, err
	}
	if err := unmarshal(data, &location); err != nil {
		return location, err
	}
	c.Invalidate(locationsKey)
	return location, nil
}

// UpdateLocation patches a location and invalidates the list and detail keys.
func (c *Client) UpdateLocation(ctx context.Context, id int64, patch LocationPatch) (models.Location, error) {
	var location models.Location
	data, err := c.do(ctx, http.MethodPut, locationKey(id), patch)
	if err != nil {
		return location, err
	}
	if err := unmarshal(data, &location); err != nil {
		return location, err
	}
	c.Invalidate(locationsKey, locationKey(id))
	return location, nil
}

// DeleteLocation deletes a location and invalidates the list and detail keys.
func (c *Client) DeleteLocation(ctx context.Context, id int64) error {
	if _, err := c.do(ctx, http.MethodDelete, locationKey(id), nil); err != nil {
		return err
	}
	c.Invalidate(locationsKey, locationKey(id))
	return nil
}
