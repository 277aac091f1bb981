package cmd

import (
	"fmt"
	"log/slog"

	"github.com/bintangns/WMS-Prototype/internal/adapters/out/activity"
	"github.com/bintangns/WMS-Prototype/internal/adapters/out/classifier"
	"github.com/bintangns/WMS-Prototype/internal/adapters/out/postgres"
	"github.com/bintangns/WMS-Prototype/internal/adapters/out/postgres/clientrepo"
	"github.com/bintangns/WMS-Prototype/internal/adapters/out/postgres/hurepo"
	"github.com/bintangns/WMS-Prototype/internal/core/application/usecases/commands"
	"github.com/bintangns/WMS-Prototype/internal/core/application/usecases/queries"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/services/packaging"
	"github.com/bintangns/WMS-Prototype/internal/core/ports"
	"github.com/bintangns/WMS-Prototype/internal/pkg/token"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	recommender *packaging.Recommender
	issuer      *token.Issuer
	recorder    ports.ActivityRecorder
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	schema, err := classifier.LoadFeatureSchema(config.FeatureSchemaPath)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("load feature schema: %w", err)
	}

	recommender, err := packaging.NewRecommender(schema, classifier.NewCatalogClassifier())
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create recommender: %w", err)
	}

	issuer, err := token.NewIssuer(config.JWTSecret, config.TokenTTL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create token issuer: %w", err)
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		recommender: recommender,
		issuer:      issuer,
		recorder:    activity.NewGormActivityRecorder(gormDB, logger),
	}, nil
}

func (c *CompositionRoot) TokenIssuer() *token.Issuer {
	return c.issuer
}

func (c *CompositionRoot) ActivityRecorder() ports.ActivityRecorder {
	return c.recorder
}

func (c *CompositionRoot) CreateStartSessionCommandHandler() commands.StartSessionCommandHandler {
	return commands.NewStartSessionCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateCloseSessionsCommandHandler() commands.CloseSessionsCommandHandler {
	return commands.NewCloseSessionsCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateCloseStaleSessionsCommandHandler() commands.CloseStaleSessionsCommandHandler {
	return commands.NewCloseStaleSessionsCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateRegisterWorkstationCommandHandler() commands.RegisterWorkstationCommandHandler {
	return commands.NewRegisterWorkstationCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateEmptyHandlingUnitCommandHandler() commands.CreateEmptyHandlingUnitCommandHandler {
	return commands.NewCreateEmptyHandlingUnitCommandHandler(c.packingUoWFactory())
}

func (c *CompositionRoot) CreateReplaceHandlingUnitItemsCommandHandler() commands.ReplaceHandlingUnitItemsCommandHandler {
	return commands.NewReplaceHandlingUnitItemsCommandHandler(c.packingUoWFactory())
}

func (c *CompositionRoot) CreateAssignItemsBySKUCommandHandler() commands.AssignItemsBySKUCommandHandler {
	return commands.NewAssignItemsBySKUCommandHandler(c.packingUoWFactory())
}

func (c *CompositionRoot) CreateCreatePoolItemCommandHandler() commands.CreatePoolItemCommandHandler {
	return commands.NewCreatePoolItemCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateUnassignItemsCommandHandler() commands.UnassignItemsCommandHandler {
	return commands.NewUnassignItemsCommandHandler(c.itemUoWFactory())
}

func (c *CompositionRoot) CreateScanHandlingUnitCommandHandler() commands.ScanHandlingUnitCommandHandler {
	return commands.NewScanHandlingUnitCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateVerifyItemCommandHandler() commands.VerifyItemCommandHandler {
	return commands.NewVerifyItemCommandHandler(c.workflowUoWFactory())
}

func (c *CompositionRoot) CreateGetHandlingUnitQueryHandler() queries.GetHandlingUnitQueryHandler {
	return queries.NewGetHandlingUnitQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPoolItemsQueryHandler() queries.ListPoolItemsQueryHandler {
	return queries.NewListPoolItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllClientsQueryHandler() queries.GetAllClientsQueryHandler {
	return queries.NewGetAllClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllWorkstationsQueryHandler() queries.GetAllWorkstationsQueryHandler {
	return queries.NewGetAllWorkstationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRecommendBoxQueryHandler() queries.RecommendBoxQueryHandler {
	return queries.NewRecommendBoxQueryHandler(
		hurepo.NewGormHandlingUnitRepository(c.gormDB),
		clientrepo.NewGormClientRepository(c.gormDB),
		c.recommender,
	)
}

func (c *CompositionRoot) packingUoWFactory() commands.PackingUoWFactory {
	return FuncPackingUoWFactory(func() commands.PackingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) itemUoWFactory() commands.ItemUoWFactory {
	return FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workflowUoWFactory() commands.WorkflowUoWFactory {
	return FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncPackingUoWFactory func() commands.PackingUoW

func (f FuncPackingUoWFactory) Create() commands.PackingUoW {
	return f()
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncWorkflowUoWFactory func() commands.WorkflowUoW

func (f FuncWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return f()
}
