package transactions

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
	"github.com/m04kA/SMC-StationBooking/internal/service/bookings/models"
)

// Service сервис чтения журнала транзакций, отчетов и квитанций
type Service struct {
	ledgerRepo   LedgerRepository
	reportWriter ReportWriter
	receiptSink  ReceiptSink
	logger       Logger
}

// NewService создает новый экземпляр сервиса транзакций
func NewService(
	ledgerRepo LedgerRepository,
	reportWriter ReportWriter,
	receiptSink ReceiptSink,
	logger Logger,
) *Service {
	return &Service{
		ledgerRepo:   ledgerRepo,
		reportWriter: reportWriter,
		receiptSink:  receiptSink,
		logger:       logger,
	}
}

// GetUserTransactions возвращает историю бронирований пользователя
func (s *Service) GetUserTransactions(ctx context.Context, user string) (*models.TransactionListResponse, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: user is required", ErrInvalidInput)
	}

	txs := s.ledgerRepo.ByUser(user)
	s.logger.Info("GetUserTransactions: fetched %d transactions for user=%s", len(txs), user)
	return models.FromDomainTransactionList(txs), nil
}

// GetTransactions возвращает транзакции на дату бронирования или все, если date == nil
func (s *Service) GetTransactions(ctx context.Context, date *domain.Date) (*models.TransactionListResponse, error) {
	var txs []domain.Transaction
	if date != nil {
		txs = s.ledgerRepo.ByDate(*date)
		s.logger.Info("GetTransactions: fetched %d transactions for date=%s", len(txs), date)
	} else {
		txs = s.ledgerRepo.All()
		s.logger.Info("GetTransactions: fetched %d transactions", len(txs))
	}
	return models.FromDomainTransactionList(txs), nil
}

// ExportDayReport выгружает отчет по транзакциям на дату и возвращает путь к нему
func (s *Service) ExportDayReport(ctx context.Context, date domain.Date) (string, int, error) {
	txs := s.ledgerRepo.ByDate(date)

	path, err := s.reportWriter.WriteDayReport(ctx, date, txs)
	if err != nil {
		s.logger.Error("ExportDayReport: failed to write report for %s: %v", date, err)
		return "", 0, fmt.Errorf("%w: ExportDayReport - %v", ErrInternal, err)
	}

	s.logger.Info("ExportDayReport: exported %d transactions for %s to %s", len(txs), date, path)
	return path, len(txs), nil
}

// ReissueLastReceipt повторно выпускает квитанцию по последней транзакции
func (s *Service) ReissueLastReceipt(ctx context.Context) (*models.TransactionResponse, string, error) {
	last, ok := s.ledgerRepo.Last()
	if !ok {
		s.logger.Warn("ReissueLastReceipt: ledger is empty")
		return nil, "", ErrNoTransactions
	}

	ref, err := s.receiptSink.Emit(ctx, &last)
	if err != nil {
		s.logger.Error("ReissueLastReceipt: failed to emit receipt for id=%s: %v", last.ID, err)
		return nil, "", fmt.Errorf("%w: ReissueLastReceipt - %v", ErrInternal, err)
	}

	s.logger.Info("ReissueLastReceipt: receipt for id=%s saved to %s", last.ID, ref)
	return models.FromDomainTransaction(&last), ref, nil
}
