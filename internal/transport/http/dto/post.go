package dto

import (
	"encoding/json"
	"time"

	"nativeblog/internal/domain/models"
)

// CreatePostInput is the add-post form. Times are raw client strings.
type CreatePostInput struct {
	Image    string `json:"image" form:"image"`
	Title    string `json:"pname" form:"pname" validate:"required"`
	Author   string `json:"aname" form:"aname"`
	ImgAlt   string `json:"img_alt" form:"img_alt"`
	ImgTitle string `json:"img_title" form:"img_title"`
	Body     string `json:"pdesc" form:"pdesc"`
	Category string `json:"cname" form:"cname"`
	UpDate   string `json:"up_date" form:"up_date"`
	STime    string `json:"stime" form:"stime"`
}

// UpdatePostInput carries only the fields present in the request.
type UpdatePostInput struct {
	ID       json.Number `json:"id"`
	Image    *string     `json:"image"`
	Title    *string     `json:"pname"`
	Author   *string     `json:"aname"`
	ImgAlt   *string     `json:"img_alt"`
	ImgTitle *string     `json:"img_title"`
	Body     *string     `json:"pdesc"`
	Category *string     `json:"cname"`
	UpDate   *string     `json:"up_date"`
	STime    *string     `json:"stime"`
}

type PostMutationResponse struct {
	Message string      `json:"message"`
	Data    models.Post `json:"data"`
}

type ViewsResponse struct {
	Message       string `json:"message"`
	NewViewsCount int    `json:"newViewsCount"`
}

// SearchPostResponse is the search result row shape the client renders.
type SearchPostResponse struct {
	ID       int64      `json:"id"`
	Image    string     `json:"image"`
	Title    string     `json:"title"`
	Author   string     `json:"author"`
	ImgAlt   string     `json:"img_alt"`
	ImgTitle string     `json:"img_title"`
	Excerpt  string     `json:"excerpt"`
	Category string     `json:"cname"`
	UpDate   *time.Time `json:"up_date"`
	STime    time.Time  `json:"stime"`
	Views    int        `json:"views"`
}

func ToSearchPostResponses(posts []models.Post) []SearchPostResponse {
	out := make([]SearchPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, SearchPostResponse{
			ID:       p.ID,
			Image:    p.Image,
			Title:    p.Title,
			Author:   p.Author,
			ImgAlt:   p.ImgAlt,
			ImgTitle: p.ImgTitle,
			Excerpt:  p.Body,
			Category: p.Category,
			UpDate:   p.UpDate,
			STime:    p.STime,
			Views:    p.Views,
		})
	}
	return out
}

type CategoryRequest struct {
	Name string `json:"name" form:"name"`
}

type CategoryMutationResponse struct {
	Message string          `json:"message"`
	Data    models.Category `json:"data"`
}

type LikeResponse struct {
	Liked bool `json:"liked"`
	Likes *int `json:"likes,omitempty"`
}
