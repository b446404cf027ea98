package views

import (
	"html/template"
	"log"
	"net/http"
)

// Render models. The handlers assemble these; the markup below is deliberately
// minimal.

type PageHeader struct {
	Title     string
	Strapline string
}

type LocationRow struct {
	ID         string
	Name       string
	Address    string
	Rating     int
	Facilities []string
	Distance   string
}

type Coords struct {
	Lat float64
	Lng float64
}

type ReviewRow struct {
	Author     string
	Rating     int
	ReviewText string
	CreatedOn  string
}

type Homepage struct {
	Title      string
	PageHeader PageHeader
	Sidebar    string
	Locations  []LocationRow
	Message    string
}

type LocationInfo struct {
	Title        string
	PageHeader   PageHeader
	Context      string
	CallToAction string
	Name         string
	Address      string
	Rating       int
	Facilities   []string
	Coords       Coords
	Reviews      []ReviewRow
	ID           string
}

type ReviewForm struct {
	Title      string
	PageHeader PageHeader
	LocationID string
	Error      bool
}

type GenericText struct {
	Title   string
	Content string
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{templates: template.Must(template.New("views").Parse(pageTemplates))}
}

func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

const pageTemplates = `
{{define "locations-list"}}<!DOCTYPE html>
<html><head><title>{{.Title}}</title></head><body>
<h1>{{.PageHeader.Title}}</h1><p>{{.PageHeader.Strapline}}</p>
{{if .Message}}<p class="alert">{{.Message}}</p>{{end}}
<ul>{{range .Locations}}
<li><a href="/location/{{.ID}}">{{.Name}}</a> - {{.Address}} - rating {{.Rating}} - {{.Distance}}</li>
{{end}}</ul>
<aside>{{.Sidebar}}</aside>
</body></html>{{end}}

{{define "location-info"}}<!DOCTYPE html>
<html><head><title>{{.Title}}</title></head><body>
<h1>{{.PageHeader.Title}}</h1>
<p>{{.Address}} - rating {{.Rating}}</p>
<p>map at {{.Coords.Lat}},{{.Coords.Lng}}</p>
<ul>{{range .Facilities}}<li>{{.}}</li>{{end}}</ul>
<p>{{.Context}}</p><p>{{.CallToAction}}</p>
<a href="/location/{{.ID}}/review/new">Add review</a>
<ul>{{range .Reviews}}
<li>{{.Author}} rated {{.Rating}} on {{.CreatedOn}}: {{.ReviewText}}</li>
{{end}}</ul>
</body></html>{{end}}

{{define "location-review-form"}}<!DOCTYPE html>
<html><head><title>{{.Title}}</title></head><body>
<h1>{{.PageHeader.Title}}</h1>
{{if .Error}}<p class="alert">All fields required, please try again</p>{{end}}
<form method="POST" action="/location/{{.LocationID}}/review/new">
<input name="name" placeholder="Name">
<select name="rating"><option>5</option><option>4</option><option>3</option><option>2</option><option>1</option></select>
<textarea name="review"></textarea>
<button type="submit">Add my review</button>
</form>
</body></html>{{end}}

{{define "generic-text"}}<!DOCTYPE html>
<html><head><title>{{.Title}}</title></head><body>
<h1>{{.Title}}</h1><p>{{.Content}}</p>
</body></html>{{end}}
`
