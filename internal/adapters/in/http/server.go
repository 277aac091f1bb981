// Package http exposes the packing workflow over the generated OpenAPI
// server interface.
package http

import (
	"net/http"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/application/usecases/commands"
	"github.com/bintangns/WMS-Prototype/internal/core/application/usecases/queries"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/core/ports"
	"github.com/bintangns/WMS-Prototype/internal/generated/servers"
	"github.com/bintangns/WMS-Prototype/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	startSessionHandler       commands.StartSessionCommandHandler
	closeSessionsHandler      commands.CloseSessionsCommandHandler
	createClientHandler       commands.CreateClientCommandHandler
	createHandlingUnitHandler commands.CreateEmptyHandlingUnitCommandHandler
	replaceItemsHandler       commands.ReplaceHandlingUnitItemsCommandHandler
	createPoolItemHandler     commands.CreatePoolItemCommandHandler
	assignItemsHandler        commands.AssignItemsBySKUCommandHandler
	unassignItemsHandler      commands.UnassignItemsCommandHandler
	scanHandler               commands.ScanHandlingUnitCommandHandler
	verifyItemHandler         commands.VerifyItemCommandHandler
	registerStationHandler    commands.RegisterWorkstationCommandHandler

	// Query handlers
	getHandlingUnitHandler  queries.GetHandlingUnitQueryHandler
	listPoolItemsHandler    queries.ListPoolItemsQueryHandler
	getAllClientsHandler    queries.GetAllClientsQueryHandler
	getWorkstationsHandler  queries.GetAllWorkstationsQueryHandler
	recommendBoxHandler     queries.RecommendBoxQueryHandler

	issuer   *token.Issuer
	recorder ports.ActivityRecorder
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	startSessionHandler commands.StartSessionCommandHandler,
	closeSessionsHandler commands.CloseSessionsCommandHandler,
	createClientHandler commands.CreateClientCommandHandler,
	createHandlingUnitHandler commands.CreateEmptyHandlingUnitCommandHandler,
	replaceItemsHandler commands.ReplaceHandlingUnitItemsCommandHandler,
	createPoolItemHandler commands.CreatePoolItemCommandHandler,
	assignItemsHandler commands.AssignItemsBySKUCommandHandler,
	unassignItemsHandler commands.UnassignItemsCommandHandler,
	scanHandler commands.ScanHandlingUnitCommandHandler,
	verifyItemHandler commands.VerifyItemCommandHandler,
	registerStationHandler commands.RegisterWorkstationCommandHandler,
	getHandlingUnitHandler queries.GetHandlingUnitQueryHandler,
	listPoolItemsHandler queries.ListPoolItemsQueryHandler,
	getAllClientsHandler queries.GetAllClientsQueryHandler,
	getWorkstationsHandler queries.GetAllWorkstationsQueryHandler,
	recommendBoxHandler queries.RecommendBoxQueryHandler,
	issuer *token.Issuer,
	recorder ports.ActivityRecorder,
) *Server {
	return &Server{
		startSessionHandler:       startSessionHandler,
		closeSessionsHandler:      closeSessionsHandler,
		createClientHandler:       createClientHandler,
		createHandlingUnitHandler: createHandlingUnitHandler,
		replaceItemsHandler:       replaceItemsHandler,
		createPoolItemHandler:     createPoolItemHandler,
		assignItemsHandler:        assignItemsHandler,
		unassignItemsHandler:      unassignItemsHandler,
		scanHandler:               scanHandler,
		verifyItemHandler:         verifyItemHandler,
		registerStationHandler:    registerStationHandler,
		getHandlingUnitHandler:    getHandlingUnitHandler,
		listPoolItemsHandler:      listPoolItemsHandler,
		getAllClientsHandler:      getAllClientsHandler,
		getWorkstationsHandler:    getWorkstationsHandler,
		recommendBoxHandler:       recommendBoxHandler,
		issuer:                    issuer,
		recorder:                  recorder,
	}
}

// WorkstationLogin handles POST /auth/login - opens a packing session and
// issues an access token bound to the workstation.
func (s *Server) WorkstationLogin(ctx echo.Context) error {
	var req servers.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	cmd, err := commands.NewStartSessionCommand(kernel.NewUUID(), req.Username, req.WorkstationCode)
	if err != nil {
		return writeError(ctx, err)
	}

	sess, err := s.startSessionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	var roles []string
	if req.Roles != nil {
		roles = *req.Roles
	}

	accessToken, err := s.issuer.Issue(sess.Picker(), req.WorkstationCode, roles, time.Now())
	if err != nil {
		return writeError(ctx, err)
	}

	s.recorder.Record(ctx.Request().Context(), ports.ActivityEntry{
		Action:          "workstation_login",
		Actor:           sess.Picker(),
		WorkstationCode: req.WorkstationCode,
		Method:          ctx.Request().Method,
		Path:            ctx.Request().URL.Path,
		StatusCode:      http.StatusOK,
		IPAddress:       ctx.RealIP(),
		UserAgent:       ctx.Request().UserAgent(),
		Extra:           map[string]any{"session_id": sess.ID().String()},
		At:              time.Now().UTC(),
	})

	return ctx.JSON(http.StatusOK, servers.LoginResponse{
		AccessToken:     accessToken,
		SessionId:       sess.ID().Bytes(),
		Username:        sess.Picker(),
		WorkstationCode: req.WorkstationCode,
	})
}

// WorkstationLogout handles POST /auth/logout - closes every active session
// of the authenticated picker.
func (s *Server) WorkstationLogout(ctx echo.Context) error {
	claims, ok := ClaimsFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, map[string]string{
			"error": "missing bearer token",
		})
	}

	cmd, err := commands.NewCloseSessionsCommand(claims.Username)
	if err != nil {
		return writeError(ctx, err)
	}

	closed, err := s.closeSessionsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	s.recorder.Record(ctx.Request().Context(), ports.ActivityEntry{
		Action:          "workstation_logout",
		Actor:           claims.Username,
		WorkstationCode: claims.Workstation,
		Method:          ctx.Request().Method,
		Path:            ctx.Request().URL.Path,
		StatusCode:      http.StatusOK,
		IPAddress:       ctx.RealIP(),
		UserAgent:       ctx.Request().UserAgent(),
		Extra:           map[string]any{"closed_sessions": closed},
		At:              time.Now().UTC(),
	})

	return ctx.JSON(http.StatusOK, servers.LogoutResponse{ClosedSessions: closed})
}

// GetClients handles GET /clients - lists all clients ordered by code.
func (s *Server) GetClients(ctx echo.Context) error {
	clients, err := s.getAllClientsHandler.Handle(ctx.Request().Context(), queries.NewGetAllClientsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Client, len(clients))
	for i, c := range clients {
		response[i] = servers.Client{
			Id:   c.ID.Bytes(),
			Code: c.Code,
			Name: c.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateClient handles POST /clients - registers a new client.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req servers.NewClient
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateClientCommand(clientID, req.Name, req.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createClientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Client{
		Id:   clientID.Bytes(),
		Code: cmd.Code(),
		Name: cmd.Name(),
	})
}

// CreateHandlingUnit handles POST /handling-units - prepares an empty
// handling unit for a client, or re-owns an existing code.
func (s *Server) CreateHandlingUnit(ctx echo.Context) error {
	var req servers.NewHandlingUnit
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	clientID, err := kernel.UUIDFromString(req.ClientId.String())
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateEmptyHandlingUnitCommand(kernel.NewUUID(), req.Code, clientID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createHandlingUnitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondHandlingUnit(ctx, cmd.HUCode(), http.StatusCreated)
}

// GetHandlingUnit handles GET /handling-units/{huCode}.
func (s *Server) GetHandlingUnit(ctx echo.Context, huCode string) error {
	return s.respondHandlingUnit(ctx, huCode, http.StatusOK)
}

// AssignItemsBySku handles POST /handling-units/{huCode}/assign - moves pool
// items onto the unit by SKU.
func (s *Server) AssignItemsBySku(ctx echo.Context, huCode string) error {
	var req servers.AssignItemsRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	autoLine := true
	if req.AutoLine != nil {
		autoLine = *req.AutoLine
	}

	cmd, err := commands.NewAssignItemsBySKUCommand(huCode, req.Skus, autoLine)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondHandlingUnit(ctx, huCode, http.StatusOK)
}

// ReplaceHandlingUnitItems handles PUT /handling-units/{huCode}/items - swaps
// the unit's content for the given manifest, resetting workflow state.
func (s *Server) ReplaceHandlingUnitItems(ctx echo.Context, huCode string) error {
	var req servers.ReplaceItemsRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	clientID, err := kernel.UUIDFromString(req.ClientId.String())
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]commands.ItemSpec, len(req.Items))
	for i, line := range req.Items {
		barcode := ""
		if line.Barcode != nil {
			barcode = *line.Barcode
		}
		items[i] = commands.ItemSpec{
			LineNo:   line.LineNo,
			SKU:      line.Sku,
			Name:     line.Name,
			Qty:      line.Qty,
			Barcode:  barcode,
			Category: line.Category,
			LengthCm: line.LengthCm,
			WidthCm:  line.WidthCm,
			HeightCm: line.HeightCm,
			WeightG:  line.WeightG,
		}
	}

	cmd, err := commands.NewReplaceHandlingUnitItemsCommand(kernel.NewUUID(), huCode, clientID, items)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.replaceItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondHandlingUnit(ctx, huCode, http.StatusOK)
}

// GetBoxRecommendation handles GET /handling-units/{huCode}/recommendation.
func (s *Server) GetBoxRecommendation(ctx echo.Context, huCode string, params servers.GetBoxRecommendationParams) error {
	distanceKm := 0.0
	if params.DistanceKm != nil {
		distanceKm = *params.DistanceKm
	}

	query, err := queries.NewRecommendBoxQuery(huCode, distanceKm)
	if err != nil {
		return writeError(ctx, err)
	}

	recommendation, err := s.recommendBoxHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	wrapLines := make([]servers.WrapLine, len(recommendation.BubbleWrapItems))
	for i, line := range recommendation.BubbleWrapItems {
		wrapLines[i] = servers.WrapLine{
			ItemId:   line.ItemID.Bytes(),
			LineNo:   line.LineNo,
			Sku:      line.SKU,
			Category: line.Category,
		}
	}

	return ctx.JSON(http.StatusOK, servers.BoxRecommendation{
		HuCode:          recommendation.HUCode,
		ClientName:      recommendation.ClientName,
		ContainerCode:   recommendation.ContainerCode,
		NeedBubbleWrap:  recommendation.NeedBubbleWrap,
		BubbleWrapItems: wrapLines,
	})
}

// ScanHandlingUnit handles POST /handling-units/{huCode}/scan - claims the
// unit for the authenticated picker's session.
func (s *Server) ScanHandlingUnit(ctx echo.Context, huCode string) error {
	claims, ok := ClaimsFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, map[string]string{
			"error": "missing bearer token",
		})
	}

	var req servers.ScanRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	workstationCode := ""
	if req.WorkstationCode != nil {
		workstationCode = *req.WorkstationCode
	}

	cmd, err := commands.NewScanHandlingUnitCommand(huCode, claims.Username, workstationCode)
	if err != nil {
		return writeError(ctx, err)
	}

	stationCode, err := s.scanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	// The packer sees the full unit right away, lines included, so the
	// verify loop can start without a second round trip.
	hu, err := s.handlingUnitResponse(ctx, huCode)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ScanResponse{
		HandlingUnit:    hu,
		WorkstationCode: stationCode,
	})
}

// VerifyItem handles POST /handling-units/{huCode}/verify - verifies one
// line of the unit, optionally correcting its physical attributes.
func (s *Server) VerifyItem(ctx echo.Context, huCode string) error {
	claims, ok := ClaimsFrom(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, map[string]string{
			"error": "missing bearer token",
		})
	}

	var req servers.VerifyItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	sku := ""
	if req.Sku != nil {
		sku = *req.Sku
	}
	barcode := ""
	if req.Barcode != nil {
		barcode = *req.Barcode
	}

	cmd, err := commands.NewVerifyItemCommand(
		huCode, claims.Username, claims.Workstation,
		req.LineNo, sku, barcode,
		req.Category, req.LengthCm, req.WidthCm, req.HeightCm, req.WeightG,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.verifyItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	lineNo := 0
	if n := result.Line.Location().LineNo(); n != nil {
		lineNo = *n
	}

	return ctx.JSON(http.StatusOK, servers.VerifyItemResponse{
		ItemId:          result.Line.ID().Bytes(),
		LineNo:          lineNo,
		Sku:             result.Line.SKU(),
		AlreadyVerified: result.AlreadyVerified,
		HuStatus:        result.HUStatus.String(),
		AllVerified:     result.AllVerified,
	})
}

// CreatePoolItem handles POST /items - registers an unassigned pool item.
func (s *Server) CreatePoolItem(ctx echo.Context) error {
	var req servers.NewPoolItem
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	barcode := ""
	if req.Barcode != nil {
		barcode = *req.Barcode
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreatePoolItemCommand(
		itemID, req.Sku, req.Name, req.Qty, barcode,
		req.Category, req.LengthCm, req.WidthCm, req.HeightCm, req.WeightG,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createPoolItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.PoolItem{
		Id:       itemID.Bytes(),
		Sku:      cmd.SKU(),
		Name:     cmd.Name(),
		Qty:      cmd.Qty(),
		Barcode:  cmd.Barcode(),
		Category: cmd.Category(),
	})
}

// ListPoolItems handles GET /items/pool - lists unassigned pool items,
// optionally filtered by SKU.
func (s *Server) ListPoolItems(ctx echo.Context, params servers.ListPoolItemsParams) error {
	sku := ""
	if params.Sku != nil {
		sku = *params.Sku
	}

	items, err := s.listPoolItemsHandler.Handle(ctx.Request().Context(), queries.NewListPoolItemsQuery(sku))
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.PoolItem, len(items))
	for i, item := range items {
		response[i] = servers.PoolItem{
			Id:       item.ID.Bytes(),
			Sku:      item.SKU,
			Name:     item.Name,
			Qty:      item.Qty,
			Barcode:  item.Barcode,
			Category: item.Category,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UnassignItems handles POST /items/unassign - moves items back to the pool.
func (s *Server) UnassignItems(ctx echo.Context) error {
	var req servers.UnassignItemsRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	itemIDs := make([]kernel.UUID, len(req.ItemIds))
	for i, id := range req.ItemIds {
		itemID, err := kernel.UUIDFromString(id.String())
		if err != nil {
			return writeError(ctx, err)
		}
		itemIDs[i] = itemID
	}

	cmd, err := commands.NewUnassignItemsCommand(itemIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	moved, err := s.unassignItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.UnassignItemsResponse{MovedItems: moved})
}

// GetWorkstations handles GET /workstations - lists all stations including
// retired ones.
func (s *Server) GetWorkstations(ctx echo.Context) error {
	stations, err := s.getWorkstationsHandler.Handle(ctx.Request().Context(), queries.NewGetAllWorkstationsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Workstation, len(stations))
	for i, station := range stations {
		response[i] = servers.Workstation{
			Id:          station.ID.Bytes(),
			Code:        station.Code,
			Area:        station.Area,
			Description: station.Description,
			IsActive:    station.IsActive,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterWorkstation handles POST /workstations - registers a station or
// updates the details of an existing code.
func (s *Server) RegisterWorkstation(ctx echo.Context) error {
	var req servers.NewWorkstation
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	area := ""
	if req.Area != nil {
		area = *req.Area
	}
	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	cmd, err := commands.NewRegisterWorkstationCommand(kernel.NewUUID(), req.Code, area, description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.registerStationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	stations, err := s.getWorkstationsHandler.Handle(ctx.Request().Context(), queries.NewGetAllWorkstationsQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	for _, station := range stations {
		if station.Code == cmd.WorkstationCode() {
			return ctx.JSON(http.StatusCreated, servers.Workstation{
				Id:          station.ID.Bytes(),
				Code:        station.Code,
				Area:        station.Area,
				Description: station.Description,
				IsActive:    station.IsActive,
			})
		}
	}

	return ctx.NoContent(http.StatusCreated)
}

// respondHandlingUnit reads a handling unit through the read model and
// writes it with the given status.
func (s *Server) respondHandlingUnit(ctx echo.Context, huCode string, status int) error {
	hu, err := s.handlingUnitResponse(ctx, huCode)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, hu)
}

// handlingUnitResponse builds the wire representation of a handling unit
// from the read model.
func (s *Server) handlingUnitResponse(ctx echo.Context, huCode string) (servers.HandlingUnit, error) {
	query, err := queries.NewGetHandlingUnitQuery(huCode)
	if err != nil {
		return servers.HandlingUnit{}, err
	}

	hu, err := s.getHandlingUnitHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return servers.HandlingUnit{}, err
	}

	lines := make([]servers.HandlingUnitLine, len(hu.Lines))
	for i, line := range hu.Lines {
		lines[i] = servers.HandlingUnitLine{
			Id:         line.ID.Bytes(),
			LineNo:     line.LineNo,
			Sku:        line.SKU,
			Name:       line.Name,
			Qty:        line.Qty,
			Barcode:    line.Barcode,
			Category:   line.Category,
			LengthCm:   line.LengthCm,
			WidthCm:    line.WidthCm,
			HeightCm:   line.HeightCm,
			WeightG:    line.WeightG,
			VolumeCm3:  line.VolumeCm3,
			Verified:   line.Verified,
			VerifiedBy: line.VerifiedBy,
			VerifiedAt: line.VerifiedAt,
		}
	}

	return servers.HandlingUnit{
		Id:                  hu.ID.Bytes(),
		Code:                hu.Code,
		Status:              hu.Status,
		ClientCode:          hu.ClientCode,
		ClientName:          hu.ClientName,
		AssignedPicker:      hu.AssignedPicker,
		AssignedWorkstation: hu.AssignedWorkstation,
		CreatedAt:           hu.CreatedAt,
		UpdatedAt:           hu.UpdatedAt,
		Lines:               lines,
	}, nil
}
