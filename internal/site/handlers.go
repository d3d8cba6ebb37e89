package site

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/perspectivehealth/clinic-site/internal/clinic"
	"github.com/perspectivehealth/clinic-site/pkg/logging"
)

// Handler serves the content endpoints.
type Handler struct {
	logger *logging.Logger
	now    func() time.Time
}

// NewHandler creates a site content handler.
func NewHandler(logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{logger: logger, now: time.Now}
}

// HandleListPosts is GET /api/blog.
func (h *Handler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	summaries, err := AllPosts()
	if err != nil {
		h.logger.Error("site: failed to load posts", "error", err)
		http.Error(w, "failed to load posts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": summaries})
}

// HandleGetPost is GET /api/blog/{slug}.
func (h *Handler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, ok := PostBySlug(slug)
	if !ok {
		http.Error(w, "post not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"post":   post,
		"schema": ArticleSchema(post),
	})
}

// HandleHomePage is GET /api/pages/home: clinic facts plus the
// LocalBusiness structured data for the layout head.
func (h *Handler) HandleHomePage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"site":      clinic.Site,
		"providers": clinic.Providers,
		"services":  clinic.Services,
		"schema":    LocalBusinessSchema(),
	})
}

// HandleServicePage is GET /api/pages/services/{slug}.
func (h *Handler) HandleServicePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	detail, ok := clinic.ServiceBySlug(slug)
	if !ok {
		http.Error(w, "service not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"service": detail,
		"schema":  MedicalServiceSchema(detail.Name, detail.MetaDescription, "/services/"+detail.Slug),
	})
}

// HandleInsurancePage is GET /api/pages/insurance.
func (h *Handler) HandleInsurancePage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"partners": clinic.InsurancePartners,
		"phone":    clinic.Site.Phone,
	})
}

// HandleSitemap is GET /sitemap.xml.
func (h *Handler) HandleSitemap(w http.ResponseWriter, r *http.Request) {
	doc, err := SitemapXML(h.now())
	if err != nil {
		h.logger.Error("site: failed to build sitemap", "error", err)
		http.Error(w, "failed to build sitemap", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(doc)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
