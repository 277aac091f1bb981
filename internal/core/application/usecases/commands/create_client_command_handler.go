package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/client"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// CreateClientCommandHandler handles the business logic for client
// registration. Rejects codes that already exist, compared
// case-insensitively, so "acme" and "ACME" can never coexist.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client registration command.
func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	clientRepo := uow.ClientRepository()
	existing, err := clientRepo.GetByCode(ctx, cmd.Code())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewCodeConflictErrorWithCause("client_code", client.NormalizeCode(cmd.Code()),
			fmt.Errorf("client %s already uses this code", existing.Name()))
	}

	newClient, err := client.NewClient(cmd.ClientID(), cmd.Name(), cmd.Code())
	if err != nil {
		return err
	}

	if err = clientRepo.Add(ctx, newClient); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
