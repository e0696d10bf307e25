// ABOUTME: Player page renders a screen's current frame as a self-refreshing HTML document
// ABOUTME: QR codes for slideshow articles are embedded as PNG data URIs

package handlers

import (
	"encoding/base64"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
	"signage-app-api/core/interfaces"
	"signage-app-api/core/render"
)

// QRCodeSize is the edge length of generated QR codes in px
const QRCodeSize = 128

// DefaultPageRefresh is how often the player page reloads itself
const DefaultPageRefresh = 5 * time.Second

// PlayerPage serves the HTML player
type PlayerPage struct {
	player  PlayerService
	logger  interfaces.Logger
	refresh time.Duration
	now     func() time.Time
	tmpl    *template.Template
}

// NewPlayerPage creates the page handler. A refresh of zero uses DefaultPageRefresh.
func NewPlayerPage(deps interfaces.Dependencies, player PlayerService, refresh time.Duration) *PlayerPage {
	if refresh <= 0 {
		refresh = DefaultPageRefresh
	}
	p := &PlayerPage{
		player:  player,
		logger:  deps.Logger,
		refresh: refresh,
		now:     time.Now,
	}
	p.tmpl = template.Must(template.New("player").Funcs(template.FuncMap{
		"qr":     p.qrDataURI,
		"markup": func(s string) template.HTML { return template.HTML(s) },
		"css":    func(s string) template.CSS { return template.CSS(s) },
		"seq":    func(n int) []int { return make([]int, n) },
	}).Parse(playerTemplate))
	return p
}

// Mount registers the page on the router: /player for the default screen and /player/{id}
func (p *PlayerPage) Mount(r chi.Router) {
	r.Get("/player", p.ServeHTTP)
	r.Get("/player/{id}", p.ServeHTTP)
}

type pageData struct {
	Frame      render.Frame
	Fullscreen bool
	Refresh    int
}

// ServeHTTP renders the frame of the screen named in the URL, or the default screen
func (p *PlayerPage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, err := p.player.Open(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		status := http.StatusInternalServerError
		if herr, ok := toHumaError(err).(interface{ GetStatus() int }); ok {
			status = herr.GetStatus()
		}
		http.Error(w, err.Error(), status)
		return
	}

	data := pageData{
		Frame:      session.Frame(p.now()),
		Fullscreen: session.Fullscreen(),
		Refresh:    int(p.refresh / time.Second),
	}
	if data.Refresh < 1 {
		data.Refresh = 1
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := p.tmpl.Execute(w, data); err != nil {
		p.logger.Error("Failed to render player page", map[string]interface{}{
			"screen_id": session.ScreenID(),
			"error":     err.Error(),
		})
	}
}

// qrDataURI encodes payload as a PNG QR code. Encoding failures hide the code.
func (p *PlayerPage) qrDataURI(payload string) template.URL {
	png, err := qrcode.Encode(payload, qrcode.Medium, QRCodeSize)
	if err != nil {
		p.logger.Warn("Failed to encode QR code", map[string]interface{}{
			"payload": payload,
			"error":   err.Error(),
		})
		return ""
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}

const playerTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{.Refresh}}">
<title>{{.Frame.Screen.Name}}</title>
<style>
html,body{margin:0;height:100%;overflow:hidden;font-family:sans-serif}
.screen{position:relative;width:100vw;height:100vh}
.columns{display:flex}
.column{height:100%;overflow:hidden}
.section{overflow:hidden;position:relative}
.region{width:100%;height:100%;position:relative}
.region img,.region iframe,.region video{width:100%;height:100%;object-fit:cover;border:0}
.placeholder{display:flex;align-items:center;justify-content:center;height:100%;opacity:.7}
.qr{position:absolute;right:12px;bottom:12px;background:#fff;padding:4px}
.dots{position:absolute;left:0;right:0;bottom:8px;text-align:center}
.dot{display:inline-block;width:8px;height:8px;margin:0 3px;border-radius:50%;background:rgba(255,255,255,.4)}
.dot.active{background:#fff}
.ticker{position:absolute;left:0;right:0;bottom:0;overflow:hidden;white-space:nowrap;background:rgba(0,0,0,.8);display:flex;align-items:center}
.ticker span{display:inline-block;padding-left:100%;animation:scroll linear infinite}
@keyframes scroll{from{transform:translateX(0)}to{transform:translateX(-100%)}}
</style>
</head>
<body{{if .Fullscreen}} class="fullscreen"{{end}}>
{{with .Frame}}
{{if .Default}}
<div class="screen">{{template "region" .Default}}</div>
{{else}}
<div class="screen" style="background:{{.BackgroundColor}};color:{{.TextColor}}">
 <div class="columns" style="height:{{css .Sizing.ColumnHeight}}">
  <div class="column" style="width:{{.Sizing.LeftWidth}}%">{{template "region" .Left}}</div>
  <div class="column" style="width:{{.Sizing.RightWidth}}%">
  {{range .Sections}}<div class="section" style="height:{{$.Frame.Sizing.SectionHeight}}%">{{template "region" .}}</div>{{end}}
  </div>
 </div>
 {{with .Ticker}}<div class="ticker" style="height:{{.Height}}px"><span style="animation-duration:{{printf "%.2f" .DurationSeconds}}s">{{.Text}}</span></div>{{end}}
</div>
{{end}}
{{end}}
</body>
</html>
{{define "region"}}<div class="region kind-{{.Kind}}">
{{- if eq (print .Kind) "list"}}<ul>{{range .Items}}<li><strong>{{.Title}}</strong> {{.Description}}</li>{{end}}</ul>
{{- else if eq (print .Kind) "slide"}}<img src="{{.ImageURL}}" alt="{{.Title}}" onerror="this.src='{{.FallbackImageURL}}'"><h2>{{.Title}}</h2><p>{{.Description}}</p>{{if .QRPayload}}<img class="qr" src="{{qr .QRPayload}}" alt="QR code">{{end}}{{template "dots" .}}
{{- else if eq (print .Kind) "image"}}<img src="{{.ImageURL}}" alt="{{.Label}}" onerror="this.src='{{.FallbackImageURL}}'">{{template "dots" .}}
{{- else if eq (print .Kind) "embed"}}<iframe src="{{.EmbedURL}}" allow="autoplay; encrypted-media" allowfullscreen></iframe>
{{- else if eq (print .Kind) "video"}}<video src="{{.MediaURL}}" autoplay muted loop></video>
{{- else if eq (print .Kind) "webpage"}}<iframe src="{{.MediaURL}}"></iframe>
{{- else if eq (print .Kind) "content"}}<div class="placeholder">{{.Label}} ({{.Message}})</div>
{{- else if eq (print .Kind) "widget"}}{{if .Sandboxed}}<iframe sandbox="allow-scripts" srcdoc="{{.Markup}}"></iframe>{{else}}{{markup .Markup}}{{end}}
{{- else if eq (print .Kind) "weather"}}<div class="placeholder">{{.Weather.TemperatureF}}°F {{.Weather.Condition}} (feels like {{.Weather.FeelsLikeF}}°F)</div>
{{- else if eq (print .Kind) "clock"}}<div class="placeholder"><div>{{.Clock.Time}}</div><div>{{.Clock.Date}}</div></div>
{{- else}}<div class="placeholder">{{.Message}}</div>
{{- end}}</div>{{end}}
{{define "dots"}}{{if gt .Count 1}}<div class="dots">{{$idx := .Index}}{{range $i, $_ := seq .Count}}<span class="dot{{if eq $i $idx}} active{{end}}"></span>{{end}}</div>{{end}}{{end}}`
