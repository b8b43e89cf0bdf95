package services

import (
	portsrepo "github.com/wheatworks/millbook/internal/core/ports/repositories"
	portssvc "github.com/wheatworks/millbook/internal/core/ports/services"
	"github.com/wheatworks/millbook/pkg/config"
)

// NewServiceContainer wires the concrete services behind their facades.
// The record repository is injected by the caller, which picks the storage
// backend from configuration.
func NewServiceContainer(cfg *config.Config, recordRepo portsrepo.RecordRepository) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Record: NewRecordService(recordRepo),
		Auth:   NewAuthService(cfg),
	}
}
