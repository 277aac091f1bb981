package queries_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/adapters/out/postgres/clientrepo"
	"github.com/bintangns/WMS-Prototype/internal/adapters/out/postgres/hurepo"
	"github.com/bintangns/WMS-Prototype/internal/adapters/out/postgres/itemrepo"
	"github.com/bintangns/WMS-Prototype/internal/adapters/out/postgres/sessionrepo"
	"github.com/bintangns/WMS-Prototype/internal/core/application/usecases/queries"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/client"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/session"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PackingQueriesTestSuite covers the raw SQL read model handlers against a
// real PostgreSQL schema produced by the write-side DTO migrations.
type PackingQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	clientRepo *clientrepo.GormClientRepository
	huRepo     *hurepo.GormHandlingUnitRepository
	itemRepo   *itemrepo.GormItemRepository
	wsRepo     *sessionrepo.GormWorkstationRepository
}

func (suite *PackingQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&hurepo.HandlingUnitDTO{},
		&itemrepo.ItemDTO{},
		&sessionrepo.WorkstationDTO{},
		&sessionrepo.SessionDTO{},
	)
	suite.Require().NoError(err)

	suite.clientRepo = clientrepo.NewGormClientRepository(db)
	suite.huRepo = hurepo.NewGormHandlingUnitRepository(db)
	suite.itemRepo = itemrepo.NewGormItemRepository(db)
	suite.wsRepo = sessionrepo.NewGormWorkstationRepository(db)
}

func (suite *PackingQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *PackingQueriesTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE handling_unit_items, handling_units, clients, packing_sessions, workstations").Error
	suite.Require().NoError(err)
}

func (suite *PackingQueriesTestSuite) seedClient(name, code string) *client.Client {
	owner, err := client.NewClient(kernel.NewUUID(), name, code)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.clientRepo.Add(context.Background(), owner))
	return owner
}

func (suite *PackingQueriesTestSuite) seedPoolItem(sku, name string, attrs handlingunit.Attributes) *handlingunit.Item {
	item, err := handlingunit.NewPoolItem(kernel.NewUUID(), sku, name, 1, "", attrs)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.itemRepo.Add(context.Background(), item))
	return item
}

func (suite *PackingQueriesTestSuite) TestGetHandlingUnit_FullUnit_ReturnsLinesInOrder() {
	ctx := context.Background()
	owner := suite.seedClient("Acme GmbH", "ACME")

	category := "Fragile"
	length, width, height, weight := 20.0, 15.0, 10.0, 350.0
	first := suite.seedPoolItem("SKU-B", "Glass vase", handlingunit.Attributes{
		Category: &category,
		LengthCm: &length,
		WidthCm:  &width,
		HeightCm: &height,
		WeightG:  &weight,
	})
	second := suite.seedPoolItem("SKU-A", "Paperback", handlingunit.Attributes{})

	hu, err := handlingunit.NewHandlingUnit(kernel.NewUUID(), "HU-0001", owner.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.huRepo.Add(ctx, hu))

	suite.Require().NoError(hu.AttachItems([]*handlingunit.Item{first, second}, true, time.Now().UTC()))
	suite.Require().NoError(hu.Scan("alice", "WS-01", time.Now().UTC()))
	_, _, err = hu.VerifyLine(
		handlingunit.LineSelector{SKU: "SKU-A"}, handlingunit.Attributes{}, "alice", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.huRepo.Update(ctx, hu))

	handler := queries.NewGetHandlingUnitQueryHandler(suite.db)
	query, err := queries.NewGetHandlingUnitQuery("HU-0001")
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("HU-0001", result.Code)
	suite.Equal("in_progress", result.Status)
	suite.Equal("ACME", result.ClientCode)
	suite.Equal("Acme GmbH", result.ClientName)
	suite.Require().NotNil(result.AssignedPicker)
	suite.Equal("alice", *result.AssignedPicker)
	suite.Require().NotNil(result.AssignedWorkstation)
	suite.Equal("WS-01", *result.AssignedWorkstation)

	suite.Require().Len(result.Lines, 2)
	suite.Equal(1, result.Lines[0].LineNo)
	suite.Equal(2, result.Lines[1].LineNo)

	for _, line := range result.Lines {
		switch line.SKU {
		case "SKU-A":
			suite.Equal("Paperback", line.Name)
			suite.True(line.Verified)
			suite.Require().NotNil(line.VerifiedBy)
			suite.Equal("alice", *line.VerifiedBy)
			suite.NotNil(line.VerifiedAt)
			// No dimensions captured, no derived volume.
			suite.Nil(line.VolumeCm3)
		case "SKU-B":
			suite.False(line.Verified)
			suite.Require().NotNil(line.Category)
			suite.Equal("Fragile", *line.Category)
			suite.Require().NotNil(line.LengthCm)
			suite.InDelta(20.0, *line.LengthCm, 0.0001)
			suite.Require().NotNil(line.WeightG)
			suite.InDelta(350.0, *line.WeightG, 0.0001)
			suite.Require().NotNil(line.VolumeCm3)
			suite.InDelta(20.0*15.0*10.0, *line.VolumeCm3, 0.0001)
		default:
			suite.Failf("unexpected line", "sku %s", line.SKU)
		}
	}
}

func (suite *PackingQueriesTestSuite) TestGetHandlingUnit_UnknownCode_ReturnsNotFound() {
	handler := queries.NewGetHandlingUnitQueryHandler(suite.db)
	query, err := queries.NewGetHandlingUnitQuery("HU-MISSING")
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PackingQueriesTestSuite) TestListPoolItems_SkipsAssignedAndOrdersByID() {
	ctx := context.Background()
	owner := suite.seedClient("Acme GmbH", "ACME")

	suite.seedPoolItem("SKU-B", "Glass vase", handlingunit.Attributes{})
	suite.seedPoolItem("SKU-A", "Paperback", handlingunit.Attributes{})
	assigned := suite.seedPoolItem("SKU-C", "Headphones", handlingunit.Attributes{})

	hu, err := handlingunit.NewHandlingUnit(kernel.NewUUID(), "HU-0001", owner.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.huRepo.Add(ctx, hu))
	suite.Require().NoError(hu.AttachItems([]*handlingunit.Item{assigned}, true, time.Now().UTC()))
	suite.Require().NoError(suite.huRepo.Update(ctx, hu))

	handler := queries.NewListPoolItemsQueryHandler(suite.db)

	result, err := handler.Handle(ctx, queries.NewListPoolItemsQuery(""))

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	skus := []string{result[0].SKU, result[1].SKU}
	suite.ElementsMatch([]string{"SKU-A", "SKU-B"}, skus)
	// Stable listing order follows the id column, not the SKU.
	firstID, secondID := result[0].ID.Bytes(), result[1].ID.Bytes()
	suite.True(bytes.Compare(firstID[:], secondID[:]) < 0)
}

func (suite *PackingQueriesTestSuite) TestListPoolItems_WithSKUFilter() {
	suite.seedPoolItem("SKU-A", "Paperback", handlingunit.Attributes{})
	suite.seedPoolItem("SKU-A", "Paperback", handlingunit.Attributes{})
	suite.seedPoolItem("SKU-B", "Glass vase", handlingunit.Attributes{})

	handler := queries.NewListPoolItemsQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewListPoolItemsQuery("SKU-A"))

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	for _, row := range result {
		suite.Equal("SKU-A", row.SKU)
	}
}

func (suite *PackingQueriesTestSuite) TestGetAllClients_OrderedByCode() {
	suite.seedClient("Zeta Trading", "ZETA")
	suite.seedClient("Acme GmbH", "ACME")

	handler := queries.NewGetAllClientsQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetAllClientsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("ACME", result[0].Code)
	suite.Equal("Acme GmbH", result[0].Name)
	suite.Equal("ZETA", result[1].Code)
}

func (suite *PackingQueriesTestSuite) TestGetAllWorkstations_IncludesInactive() {
	ctx := context.Background()

	active, err := session.NewWorkstation(
		kernel.NewUUID(), "WS-01", "Packing", "main hall", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.wsRepo.Add(ctx, active))

	retired, err := session.NewWorkstation(
		kernel.NewUUID(), "WS-02", "Returns", "", time.Now().UTC())
	suite.Require().NoError(err)
	retired.SetActive(false)
	suite.Require().NoError(suite.wsRepo.Add(ctx, retired))

	handler := queries.NewGetAllWorkstationsQueryHandler(suite.db)

	result, err := handler.Handle(ctx, queries.NewGetAllWorkstationsQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("WS-01", result[0].Code)
	suite.True(result[0].IsActive)
	suite.Equal("Packing", result[0].Area)
	suite.Equal("WS-02", result[1].Code)
	suite.False(result[1].IsActive)
}

func TestPackingQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(PackingQueriesTestSuite))
}
