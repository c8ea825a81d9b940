package transaction

import (
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
)

// Service ties together the balance ledger updater and the transaction query
// engine. Mutations go through the unit of work; reads use the plain
// repositories directly.
type Service struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	txnRepo      persistence.TransactionRepository
	validator    *Validator
	idempotency  *IdempotencyHandler
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new transaction service
func NewService(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	txnRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.TransactionUseCase {
	return &Service{
		uow:          uow,
		userRepo:     userRepo,
		txnRepo:      txnRepo,
		validator:    NewValidator(),
		idempotency:  NewIdempotencyHandler(txnRepo),
		timeProvider: timeProvider,
		logger:       logger,
	}
}
