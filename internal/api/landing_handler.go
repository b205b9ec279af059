package api

import (
	"alcyxob/exercise-tracker/internal/storage"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const landingURLExpiry = 10 * time.Minute

// LandingHandler serves the landing page, from a bucket when one is
// configured and from the local views directory otherwise.
type LandingHandler struct {
	indexFile  string
	store      storage.FileStorage // nil when serving locally
	landingKey string
	logger     *zap.Logger
}

// NewLandingHandler creates a LandingHandler. store may be nil.
func NewLandingHandler(indexFile string, store storage.FileStorage, landingKey string, logger *zap.Logger) *LandingHandler {
	return &LandingHandler{
		indexFile:  indexFile,
		store:      store,
		landingKey: landingKey,
		logger:     logger,
	}
}

// Index handles GET /.
func (h *LandingHandler) Index(c *gin.Context) {
	if h.store == nil {
		c.File(h.indexFile)
		return
	}

	url, err := h.store.GeneratePresignedDownloadURL(c.Request.Context(), h.landingKey, landingURLExpiry)
	if err != nil {
		// The bundled page is always available as a fallback.
		h.logger.Warn("landing page presign failed, serving local copy", zap.Error(err))
		c.File(h.indexFile)
		return
	}
	c.Redirect(http.StatusFound, url)
}
