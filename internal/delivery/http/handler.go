package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pricescout/backend/internal/domain"
	"github.com/pricescout/backend/internal/importer"
)

// SearchResolver resolves a product to a marketplace URL
type SearchResolver interface {
	Resolve(ctx context.Context, request *domain.SearchRequest) (*domain.SearchResult, error)
}

// BatchProcessor runs spreadsheet batches
type BatchProcessor interface {
	ProcessFile(ctx context.Context, path, marketplace string) (*domain.BatchSummary, error)
	ProcessReader(ctx context.Context, r io.Reader, marketplace string) (*domain.BatchSummary, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search    SearchResolver
	batch     BatchProcessor
	extractor domain.PriceExtractor
}

// NewHandler creates a new HTTP handler
func NewHandler(search SearchResolver, batch BatchProcessor, extractor domain.PriceExtractor) *Handler {
	return &Handler{
		search:    search,
		batch:     batch,
		extractor: extractor,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pricescout-backend",
		"version": "1.0.0",
	})
}

// SearchAndRedirect resolves a product and responds with a 302 to the result URL
func (h *Handler) SearchAndRedirect(c *gin.Context) {
	request, ok := searchRequestFromQuery(c)
	if !ok {
		return
	}

	result, err := h.search.Resolve(c.Request.Context(), request)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.Redirect(http.StatusFound, result.URL)
}

// Search resolves a product and returns the result as JSON
func (h *Handler) Search(c *gin.Context) {
	request, ok := searchRequestFromQuery(c)
	if !ok {
		return
	}

	result, err := h.search.Resolve(c.Request.Context(), request)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Price extracts a price from a single product page URL
func (h *Handler) Price(c *gin.Context) {
	pageURL := strings.TrimSpace(c.Query("url"))
	if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "url query parameter must be an absolute http(s) URL",
		})
		return
	}

	price, err := h.extractor.ExtractPrice(c.Request.Context(), pageURL)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, price)
}

// ProcessExcel runs a batch over a spreadsheet already on disk
func (h *Handler) ProcessExcel(c *gin.Context) {
	marketplace := strings.TrimSpace(c.Query("marketplace"))
	if marketplace == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "marketplace query parameter is required"})
		return
	}

	excelFile := c.DefaultQuery("excel_file", "file.xlsx")

	summary, err := h.batch.ProcessFile(c.Request.Context(), excelFile, marketplace)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// BatchUpload runs a batch over an uploaded spreadsheet. With
// format=xlsx the results are streamed back as a workbook instead of JSON.
func (h *Handler) BatchUpload(c *gin.Context) {
	marketplace := strings.TrimSpace(c.Query("marketplace"))
	if marketplace == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "marketplace query parameter is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart file field 'file' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("could not open upload: %v", err)})
		return
	}
	defer file.Close()

	summary, err := h.batch.ProcessReader(c.Request.Context(), file, marketplace)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	if c.Query("format") == "xlsx" {
		buf, err := importer.WriteResults(summary)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to build results workbook: %v", err)})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="results.xlsx"`)
		c.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
		return
	}

	c.JSON(http.StatusOK, summary)
}

// searchRequestFromQuery validates search query parameters, writing a
// 400 response itself when they are missing
func searchRequestFromQuery(c *gin.Context) (*domain.SearchRequest, bool) {
	productName := strings.TrimSpace(c.Query("product_name"))
	marketplace := strings.TrimSpace(c.Query("marketplace"))

	if productName == "" || marketplace == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "product_name and marketplace query parameters are required",
		})
		return nil, false
	}

	return &domain.SearchRequest{
		ProductName: productName,
		Marketplace: marketplace,
	}, true
}

// abortWithDomainError maps domain errors to HTTP status codes
func abortWithDomainError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNoResults),
		errors.Is(err, domain.ErrPriceNotFound),
		errors.Is(err, domain.ErrSpreadsheetNotFound),
		errors.Is(err, domain.ErrNoProducts):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrSpreadsheetInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, domain.ErrSearchAPITimeout), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrSearchAPIFailure), errors.Is(err, domain.ErrPageFetchFailure):
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
