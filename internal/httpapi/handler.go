// Package httpapi is the request-handling boundary: routing, request/response
// serialization and status mapping around the storage core. It contains no
// inventory logic of its own.
package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"invcore/internal/store"
	"invcore/pkg/domain"
)

// Handler serves the inventory API against one store.
type Handler struct {
	store *store.Store
	log   *zap.Logger
}

// NewHandler constructs the API handler.
func NewHandler(s *store.Store, log *zap.Logger) *Handler {
	return &Handler{store: s, log: log}
}

type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, response{Success: true, Message: msg})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, response{Success: false, Message: msg})
}

// failStore maps storage-layer errors onto status codes: domain validation
// failures are the caller's fault, everything else is a server-side failure
// carrying the error's description.
func failStore(c *gin.Context, err error) {
	var (
		unknownLocation   domain.UnknownLocationError
		insufficientStock domain.InsufficientStockError
		unknownComponent  domain.UnknownComponentError
	)
	switch {
	case errors.As(err, &unknownLocation), errors.As(err, &insufficientStock):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &unknownComponent):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

// Generic per-table handlers. Every entity gets the same five operations; the
// closures below bind them to the store's typed repository methods.

func listHandler[T any](list func() ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		recs, err := list()
		if err != nil {
			failStore(c, err)
			return
		}
		respond(c, http.StatusOK, recs)
	}
}

func getHandler[T any](get func(string) (T, bool, error), notFound string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, found, err := get(c.Param("id"))
		if err != nil {
			failStore(c, err)
			return
		}
		if !found {
			respondError(c, http.StatusNotFound, notFound)
			return
		}
		respond(c, http.StatusOK, rec)
	}
}

func createHandler[T any](put func(T) error, created string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rec T
		if err := c.ShouldBindJSON(&rec); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		if err := put(rec); err != nil {
			failStore(c, err)
			return
		}
		respondMessage(c, http.StatusCreated, created)
	}
}

func updateHandler[T any](setID func(*T, string), put func(T) error, updated string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rec T
		if err := c.ShouldBindJSON(&rec); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		setID(&rec, c.Param("id"))
		if err := put(rec); err != nil {
			failStore(c, err)
			return
		}
		respondMessage(c, http.StatusOK, updated)
	}
}

func deleteHandler(del func(string) (bool, error), deleted, notFound string) gin.HandlerFunc {
	return func(c *gin.Context) {
		existed, err := del(c.Param("id"))
		if err != nil {
			failStore(c, err)
			return
		}
		if !existed {
			respondError(c, http.StatusNotFound, notFound)
			return
		}
		respondMessage(c, http.StatusOK, deleted)
	}
}

// RecordMovement routes a stock movement through the movement processor.
// Missing transaction ids and dates are defaulted here, not by the core.
func (h *Handler) RecordMovement(c *gin.Context) {
	var m domain.Movement
	if err := c.ShouldBindJSON(&m); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if m.TransactionID == "" {
		m.TransactionID = uuid.New().String()
	}
	if m.Date.IsZero() {
		m.Date = time.Now().UTC()
	}
	if err := h.store.RecordMovement(m); err != nil {
		failStore(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, "Movement recorded")
}

// LinkComponent appends a component id to a product's component list.
func (h *Handler) LinkComponent(c *gin.Context) {
	if err := h.store.AddComponentToProduct(c.Param("id"), c.Param("componentId")); err != nil {
		failStore(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Component linked")
}

// ProductComponents returns the resolved component records linked to a
// product. A missing product yields an empty list, same as a product with no
// links.
func (h *Handler) ProductComponents(c *gin.Context) {
	components, err := h.store.ProductComponents(c.Param("id"))
	if err != nil {
		failStore(c, err)
		return
	}
	respond(c, http.StatusOK, components)
}

// LevelsByLocation maps component name to quantity at one location.
func (h *Handler) LevelsByLocation(c *gin.Context) {
	loc, err := domain.ParseLocation(c.Param("location"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	levels, err := h.store.LevelsByLocation(loc)
	if err != nil {
		failStore(c, err)
		return
	}
	respond(c, http.StatusOK, levels)
}

// Summary serves the condensed inventory view.
func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.store.Summary()
	if err != nil {
		failStore(c, err)
		return
	}
	respond(c, http.StatusOK, summary)
}
