package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	portssvc "github.com/SscSPs/bizbooks_app/internal/core/ports/services"
	"github.com/SscSPs/bizbooks_app/internal/dto"
	"github.com/SscSPs/bizbooks_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	salesKind     = domain.KindSale
	purchasesKind = domain.KindPurchase
)

// documentHandler serves one document collection; the kind is fixed by the route group.
type documentHandler struct {
	kind            domain.DocumentKind
	documentService portssvc.DocumentSvcFacade
}

// registerDocumentRoutes registers the CRUD, numbering and payment routes of a collection.
func registerDocumentRoutes(rg *gin.RouterGroup, kind domain.DocumentKind, documentService portssvc.DocumentSvcFacade) {
	h := &documentHandler{kind: kind, documentService: documentService}

	rg.GET("", h.listDocuments)
	rg.POST("", h.createDocument)
	rg.GET("/next-number", h.nextNumber)
	rg.GET("/:id", h.getDocument)
	rg.PUT("/:id", h.updateDocument)
	rg.DELETE("/:id", h.deleteDocument)
	rg.POST("/:id/payments", h.recordPayment)
}

func (h *documentHandler) logger(c *gin.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(h.kind)))
}

// listDocuments godoc
// @Summary List sales invoices or purchase orders
// @Description Newest issue date first. Pass nextToken from the previous page to continue.
// @Tags documents
// @Produce json
// @Param kind path string true "sales or purchases"
// @Param search query string false "Matches counterparty name or document number"
// @Param status query string false "pending, partial or paid"
// @Param range query string false "all, thisMonth, lastMonth, thisYear, lastYear or custom"
// @Param from query string false "Custom range start (YYYY-MM-DD)"
// @Param to query string false "Custom range end (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /{kind} [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := h.logger(c)
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	resp, err := h.documentService.ListDocuments(c.Request.Context(), h.kind, params, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// nextNumber godoc
// @Summary Preview the next document number
// @Description Nothing is reserved; a concurrent create may take the number first.
// @Tags documents
// @Produce json
// @Param kind path string true "sales or purchases"
// @Param prefix query string false "Number prefix"
// @Param suffix query string false "Number suffix"
// @Success 200 {object} dto.NextNumberResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /{kind}/next-number [get]
func (h *documentHandler) nextNumber(c *gin.Context) {
	logger := h.logger(c)
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	var params dto.NextNumberParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	number, err := h.documentService.PreviewNextNumber(c.Request.Context(), h.kind, params.Prefix, params.Suffix, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute next number")
		return
	}
	c.JSON(http.StatusOK, dto.NextNumberResponse{DocumentNumber: number})
}

// createDocument godoc
// @Summary Create a sales invoice or purchase order
// @Description Totals, payment status and the document number are derived on the server.
// @Tags documents
// @Accept json
// @Produce json
// @Param kind path string true "sales or purchases"
// @Param document body dto.CreateDocumentRequest true "Draft"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Number could not be assigned"
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /{kind} [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	logger := h.logger(c)
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), h.kind, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// getDocument godoc
// @Summary Get a sales invoice or purchase order
// @Tags documents
// @Produce json
// @Param kind path string true "sales or purchases"
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /{kind}/{id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := h.logger(c)
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	doc, err := h.documentService.GetDocumentByID(c.Request.Context(), h.kind, c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to get document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// updateDocument godoc
// @Summary Update a sales invoice or purchase order
// @Description Numbering fields are immutable and the paid amount may only grow.
// @Tags documents
// @Accept json
// @Produce json
// @Param kind path string true "sales or purchases"
// @Param id path string true "Document ID"
// @Param document body dto.UpdateDocumentRequest true "Edited document"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /{kind}/{id} [put]
func (h *documentHandler) updateDocument(c *gin.Context) {
	logger := h.logger(c)
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	doc, err := h.documentService.UpdateDocument(c.Request.Context(), h.kind, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// recordPayment godoc
// @Summary Record a payment against a document
// @Tags documents
// @Accept json
// @Produce json
// @Param kind path string true "sales or purchases"
// @Param id path string true "Document ID"
// @Param payment body dto.RecordPaymentRequest true "Payment"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /{kind}/{id}/payments [post]
func (h *documentHandler) recordPayment(c *gin.Context) {
	logger := h.logger(c)
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	doc, err := h.documentService.RecordPayment(c.Request.Context(), h.kind, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// deleteDocument godoc
// @Summary Delete a sales invoice or purchase order
// @Description Other documents keep their numbers.
// @Tags documents
// @Param kind path string true "sales or purchases"
// @Param id path string true "Document ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /{kind}/{id} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	logger := h.logger(c)
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), h.kind, c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete document")
		return
	}
	c.Status(http.StatusNoContent)
}
