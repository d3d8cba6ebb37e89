package webchat

import (
	_ "embed"
	"net/http"

	"github.com/perspectivehealth/clinic-site/pkg/logging"
)

//go:embed widget.js
var widgetJS []byte

// Handler serves the embeddable chat widget assets.
type Handler struct {
	widgetJS []byte
	logger   *logging.Logger
}

// NewHandler creates a widget handler. A nil js slice falls back to the
// embedded bundle.
func NewHandler(js []byte, logger *logging.Logger) *Handler {
	if js == nil {
		js = widgetJS
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{widgetJS: js, logger: logger}
}

// HandleWidgetJS serves the embeddable widget JavaScript.
func (h *Handler) HandleWidgetJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	_, _ = w.Write(h.widgetJS)
}
