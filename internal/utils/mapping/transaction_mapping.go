package mapping

import (
	"github.com/SscSPs/wallet_api/internal/core/domain"
	"github.com/SscSPs/wallet_api/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		OwnerID:       d.OwnerID,
		Amount:        d.Amount,
		Category:      d.Category,
		TxnDate:       d.Date.Time(),
		IsIncome:      d.IsIncome,
		Comment:       d.Comment,
		AuditFields:   models.AuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		OwnerID:       m.OwnerID,
		Amount:        m.Amount,
		Category:      m.Category,
		Date:          domain.DateFromTime(m.TxnDate),
		IsIncome:      m.IsIncome,
		Comment:       m.Comment,
		AuditFields:   domain.AuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
