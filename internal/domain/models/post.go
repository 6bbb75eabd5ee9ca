package models

import "time"

// Post is a row of blog_posts. JSON keys follow the column names the mobile
// client has always read.
type Post struct {
	ID       int64      `db:"id" json:"id"`
	Image    string     `db:"pimage" json:"pimage"`
	Title    string     `db:"pname" json:"pname"`
	Author   string     `db:"aname" json:"aname"`
	ImgAlt   string     `db:"img_alt" json:"img_alt"`
	ImgTitle string     `db:"img_title" json:"img_title"`
	Body     string     `db:"pdesc" json:"pdesc"`
	BodyHTML string     `json:"pdesc_html,omitempty"`
	Category string     `db:"cname" json:"cname"`
	UpDate   *time.Time `db:"up_date" json:"up_date"`
	STime    time.Time  `db:"stime" json:"stime"`
	Views    int        `db:"views" json:"views"`
	Likes    int        `db:"likes" json:"likes"`
	Read     bool       `db:"is_read" json:"read"`
}

// PostUpdate carries the columns an edit may touch; nil means unchanged.
type PostUpdate struct {
	ID       int64
	Image    *string
	Title    *string
	Author   *string
	ImgAlt   *string
	ImgTitle *string
	Body     *string
	Category *string
	UpDate   *time.Time
	STime    *time.Time
}

// PostFilter narrows post listings.
type PostFilter struct {
	Search    string
	Category  string
	ExcludeID int64
	Limit     uint64
}

// PopularPost is the trimmed projection used by the popular posts strip.
type PopularPost struct {
	ID       int64     `json:"id"`
	ImageURL string    `json:"imageUrl"`
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Time     time.Time `json:"time"`
	Visits   int       `json:"visits"`
}
