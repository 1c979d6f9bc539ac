package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/hisakata/kakeibo/internal/core/domain"
	portssvc "github.com/hisakata/kakeibo/internal/core/ports/services"
	"github.com/hisakata/kakeibo/internal/dto"
	"github.com/hisakata/kakeibo/internal/middleware"
)

// maxImageBytes caps uploaded scan images at 10 MiB.
const maxImageBytes = 10 << 20

// scanHandler handles the document ingestion routes.
type scanHandler struct {
	scanService portssvc.ScanSvcFacade
}

func newScanHandler(scanService portssvc.ScanSvcFacade) *scanHandler {
	return &scanHandler{scanService: scanService}
}

// registerScanRoutes registers the rate-limited scan routes.
func registerScanRoutes(rg *gin.RouterGroup, scanService portssvc.ScanSvcFacade, scanLimiter *limiter.Limiter) {
	h := newScanHandler(scanService)

	scan := rg.Group("/scan", middleware.RateLimit(scanLimiter))
	{
		scan.POST("/receipt", h.scanReceipt)
		scan.POST("/statement", h.scanStatement)
		scan.POST("/commit", h.commitScan)
	}
}

// readImage pulls the multipart "image" part out of the request. The declared
// content type is taken from the part header; the extraction collaborator
// needs it alongside the raw bytes.
func readImage(c *gin.Context) ([]byte, string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Multipart field 'image' is required"})
		return nil, "", false
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image too large"})
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not open uploaded image"})
		return nil, "", false
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded image"})
		return nil, "", false
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}
	return image, mimeType, true
}

func (h *scanHandler) scanReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	image, mimeType, ok := readImage(c)
	if !ok {
		return
	}

	result, err := h.scanService.ScanReceipt(c.Request.Context(), ownerID, image, mimeType)
	if err != nil {
		respondServiceError(c, err, "Failed to scan receipt")
		return
	}

	logger.Info("Receipt scan completed", slog.Int("candidates", len(result.Candidates)))
	c.JSON(http.StatusOK, result)
}

func (h *scanHandler) scanStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	image, mimeType, ok := readImage(c)
	if !ok {
		return
	}

	result, err := h.scanService.ScanStatement(c.Request.Context(), ownerID, image, mimeType)
	if err != nil {
		respondServiceError(c, err, "Failed to scan statement")
		return
	}

	logger.Info("Statement scan completed", slog.Int("candidates", len(result.Candidates)))
	c.JSON(http.StatusOK, result)
}

// commitScan confirms reviewed candidates. A partial failure is still a 200:
// the body tells the caller exactly which candidates landed, which one broke,
// and which remain.
func (h *scanHandler) commitScan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CommitScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for commitScan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.scanService.CommitScan(
		c.Request.Context(),
		ownerID,
		domain.SourceType(req.SourceType),
		dto.ToDomainCandidates(req.Candidates),
	)
	if err != nil {
		respondServiceError(c, err, "Failed to commit scan")
		return
	}

	logger.Info("Scan commit completed",
		slog.Int("committed", len(result.Committed)),
		slog.Int("pending", len(result.Pending)))
	c.JSON(http.StatusOK, result)
}
