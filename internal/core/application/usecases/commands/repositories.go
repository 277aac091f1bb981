// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/bintangns/WMS-Prototype/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// HandlingUnitRepoFactory provides access to the handling unit
	// repository within a transaction.
	HandlingUnitRepoFactory interface {
		HandlingUnitRepository() ports.HandlingUnitRepository
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// SessionRepoFactory provides access to the session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// WorkstationRepoFactory provides access to the workstation repository
	// within a transaction.
	WorkstationRepoFactory interface {
		WorkstationRepository() ports.WorkstationRepository
	}

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// ItemUoW manages transactions for pool item operations.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	// ItemUoWFactory creates new item unit of work instances.
	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// PackingUoW manages transactions across the packing aggregates:
	// handling units, items and clients.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   huRepo := uow.HandlingUnitRepository()
	//   itemRepo := uow.ItemRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	PackingUoW interface {
		TxManager
		HandlingUnitRepoFactory
		ItemRepoFactory
		ClientRepoFactory
	}

	// PackingUoWFactory creates new packing unit of work instances.
	PackingUoWFactory interface {
		Create() PackingUoW
	}

	// WorkflowUoW manages transactions for packer workflow commands that
	// touch both the packing aggregates and the packer's session.
	WorkflowUoW interface {
		TxManager
		HandlingUnitRepoFactory
		ItemRepoFactory
		ClientRepoFactory
		SessionRepoFactory
		WorkstationRepoFactory
	}

	// WorkflowUoWFactory creates new workflow unit of work instances.
	WorkflowUoWFactory interface {
		Create() WorkflowUoW
	}

	// SessionUoW manages transactions for login and session bookkeeping.
	SessionUoW interface {
		TxManager
		SessionRepoFactory
		WorkstationRepoFactory
	}

	// SessionUoWFactory creates new session unit of work instances.
	SessionUoWFactory interface {
		Create() SessionUoW
	}
)
