// internal/app/features/campgrounds/types.go
package campgrounds

import (
	"html/template"
	"time"

	"github.com/dalemusser/yelpcamp/internal/app/system/viewdata"
)

// campgroundRow is one card on the index page.
type campgroundRow struct {
	Slug    string
	Name    string
	Image   string
	Summary string
	Author  string
}

type listData struct {
	viewdata.BaseVM
	Campgrounds []campgroundRow
}

// formData backs both the new and edit forms; Slug is empty for new.
type formData struct {
	viewdata.BaseVM
	Slug        string
	Name        string
	Image       string
	Description string
}

type commentRow struct {
	Text      string
	Author    string
	CreatedAt time.Time
}

type showData struct {
	viewdata.BaseVM
	Slug        string
	Name        string
	Image       string
	Description template.HTML
	Author      string
	CreatedAt   time.Time
	CanManage   bool
	Comments    []commentRow
}
