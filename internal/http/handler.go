package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"fleet-service/internal/db"
	"fleet-service/internal/service"
	"fleet-service/internal/storage"
	"fleet-service/internal/ws"
)

type Handler struct {
	authService      *service.AuthService
	fleetService     *service.FleetService
	tripService      *service.TripService
	preorderService  *service.PreorderService
	financeService   *service.FinanceService
	analyticsService *service.AnalyticsService
	locationService  *service.LocationService
	syncService      *service.SyncService
	store            *storage.Store
	hub              *ws.Hub
	database         *gorm.DB
	mapToken         string
	log              zerolog.Logger
}

func NewHandler(
	authService *service.AuthService,
	fleetService *service.FleetService,
	tripService *service.TripService,
	preorderService *service.PreorderService,
	financeService *service.FinanceService,
	analyticsService *service.AnalyticsService,
	locationService *service.LocationService,
	syncService *service.SyncService,
	store *storage.Store,
	hub *ws.Hub,
	database *gorm.DB,
	mapToken string,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		authService:      authService,
		fleetService:     fleetService,
		tripService:      tripService,
		preorderService:  preorderService,
		financeService:   financeService,
		analyticsService: analyticsService,
		locationService:  locationService,
		syncService:      syncService,
		store:            store,
		hub:              hub,
		database:         database,
		mapToken:         mapToken,
		log:              log,
	}
}

// healthz pings the database and reports the live websocket audience.
// A failed ping answers 503 so load balancers rotate the instance out.
func (h *Handler) healthz(c *gin.Context) {
	if h.database != nil {
		if err := db.HealthCheck(c.Request.Context(), h.database); err != nil {
			h.log.Warn().Err(err).Msg("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "database unreachable"})
			return
		}
	}

	clients := 0
	if h.hub != nil {
		clients = h.hub.ClientCount()
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ws_clients": clients})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch err {
	case service.ErrPermissionDenied:
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case service.ErrInvalidInput:
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case service.ErrNotFound:
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case service.ErrConflict:
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	case service.ErrInvalidStatus:
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case service.ErrUnauthorized:
		c.JSON(http.StatusUnauthorized, errorResponse(err.Error()))
	case service.ErrNotConfigured:
		c.JSON(http.StatusServiceUnavailable, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

func parseUUIDQuery(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseTimeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func parseIntQuery(c *gin.Context, name string) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

func parseUUIDPtr(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

type responseEnvelope struct {
	Data interface{} `json:"data"`
}

func successResponse(data interface{}) responseEnvelope {
	return responseEnvelope{Data: data}
}

func errorResponse(msg string) gin.H {
	return gin.H{"error": msg}
}
