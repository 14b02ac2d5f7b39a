package services

import (
	"fmt"

	"github.com/SscSPs/wallet_api/internal/apperrors"
	"github.com/SscSPs/wallet_api/internal/core/domain"
	"github.com/google/uuid"
)

// validateOwnerID accepts only the canonical lowercase hyphenated form ids are
// stored in; braced, urn and upper-case variants never equal a stored owner.
func validateOwnerID(userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil || id.String() != userID {
		return fmt.Errorf("%w: invalid user id", apperrors.ErrForbidden)
	}
	return nil
}

// assertOwnership fails with apperrors.ErrForbidden unless requesterID owns txn.
// Every mutating path goes through it.
func assertOwnership(txn *domain.Transaction, requesterID string) error {
	if txn == nil || txn.OwnerID == "" || txn.OwnerID != requesterID {
		return fmt.Errorf("%w: user not authorized", apperrors.ErrForbidden)
	}
	return nil
}
