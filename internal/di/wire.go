//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"chatline/internal/dbmongo"
	"chatline/internal/httpapi"
	"chatline/internal/identity"
	"chatline/internal/ledger"
	"chatline/internal/registry"
)

// InitializeServer wires repositories, services and the HTTP surface.
// media may be nil when media storage is disabled.
func InitializeServer(db *gorm.DB, media *dbmongo.MediaStorage) *httpapi.Server {
	wire.Build(
		identity.NewUserRepository,
		identity.NewIdentityService,
		registry.NewChatRepository,
		registry.NewRegistryService,
		ledger.NewMessageRepository,
		ledger.NewLedgerService,
		wire.Bind(new(ledger.MembershipChecker), new(registry.RegistryService)),
		httpapi.NewServer,
	)
	return nil
}
