package handler

import (
	"html/template"
	"net/http"

	"tebaba-backend/internal/service"
	apperrors "tebaba-backend/pkg/app_errors"
	"tebaba-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OGHandler serves a crawler-friendly HTML page with social-sharing
// metadata for an event, then redirects browsers to the public site.
type OGHandler struct {
	service service.EventService
	siteURL string
}

func NewOGHandler(service service.EventService, siteURL string) *OGHandler {
	return &OGHandler{service: service, siteURL: siteURL}
}

func (h *OGHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/og/events/:id", h.EventPage)
}

var ogPage = template.Must(template.New("og").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta property="og:type" content="website">
<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
{{- if .ImageURL}}
<meta property="og:image" content="{{.ImageURL}}">
{{- end}}
<meta property="og:url" content="{{.PageURL}}">
<meta name="twitter:card" content="summary_large_image">
<meta http-equiv="refresh" content="0;url={{.RedirectURL}}">
</head>
<body>
<p>Redirecting to <a href="{{.RedirectURL}}">{{.Title}}</a>…</p>
</body>
</html>
`))

type ogPageData struct {
	Lang        string
	Title       string
	Description string
	ImageURL    string
	PageURL     string
	RedirectURL string
}

func (h *OGHandler) EventPage(c *gin.Context) {
	id := c.Param("id")
	lang := c.DefaultQuery("lang", "fr")

	event, err := h.service.GetByID(c, id)
	if err != nil {
		if err == apperrors.ErrEventNotFound {
			c.String(http.StatusNotFound, "Event not found")
			return
		}
		logger.WithComponent("handler").Error("OG page failed", zap.String("event_id", id), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	data := ogPageData{
		Lang:        lang,
		Title:       translated(event.Title, event.TitleTranslations, lang),
		Description: translated(event.Description, event.DescriptionTranslations, lang),
		PageURL:     h.siteURL + "/og/events/" + event.ID,
		RedirectURL: h.siteURL + "/events/" + event.ID + "?lang=" + lang,
	}
	if event.ImageURL != nil {
		data.ImageURL = *event.ImageURL
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := ogPage.Execute(c.Writer, data); err != nil {
		logger.WithComponent("handler").Error("OG template failed", zap.Error(err))
	}
}

// translated prefers the requested language, falling back to the default
// field value.
func translated(fallback string, translations map[string]string, lang string) string {
	if t, ok := translations[lang]; ok && t != "" {
		return t
	}
	return fallback
}
