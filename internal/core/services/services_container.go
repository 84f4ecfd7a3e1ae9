package services

import (
	portssvc "github.com/fintrack/fintrack_backend/internal/core/ports/services"
	"github.com/fintrack/fintrack_backend/internal/repositories/database/pgsql"
	"github.com/fintrack/fintrack_backend/pkg/config"
)

// ServiceProvider bundles every service implementation behind its facade.
type ServiceProvider struct {
	UserSvc        portssvc.UserSvcFacade
	AuthSvc        portssvc.AuthSvcFacade
	AccountSvc     portssvc.AccountSvcFacade
	TransactionSvc portssvc.TransactionSvcFacade
	StatisticsSvc  portssvc.StatisticsSvcFacade
}

// NewServiceProvider wires all services onto the repository provider.
func NewServiceProvider(repos *pgsql.RepositoryProvider, cfg *config.Config) *ServiceProvider {
	userSvc := NewUserService(repos.UserRepo, repos.UserAccessRepo)
	accountSvc := NewAccountService(repos.AccountRepo)
	return &ServiceProvider{
		UserSvc:        userSvc,
		AuthSvc:        NewAuthService(userSvc, accountSvc, repos.UserRepo, repos.UserAccessRepo, cfg),
		AccountSvc:     accountSvc,
		TransactionSvc: NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.UserRepo),
		StatisticsSvc:  NewStatisticsService(repos.TransactionRepo),
	}
}
