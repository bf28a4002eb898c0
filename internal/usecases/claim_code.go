package usecases

import (
	"context"
	"fmt"

	"paylink.backend/internal/domain/entities"
	domainerrors "paylink.backend/internal/domain/errors"
	pkgcrypto "paylink.backend/pkg/crypto"
)

// claimCodeAttempts bounds the retry-until-unique loop. Collisions on a
// 48-bit random code are astronomically unlikely; hitting the bound means
// something is wrong, so the operation fails rather than persisting a
// possibly-colliding code.
const claimCodeAttempts = 5

var generateClaimCode = func(length int) (string, error) {
	return pkgcrypto.GenerateRandomToken(length / 2)
}

// allocateClaimCode generates a fresh claim code and re-checks uniqueness
// against the repository, retrying up to claimCodeAttempts times
func (u *ClaimUsecase) allocateClaimCode(ctx context.Context) (string, error) {
	for i := 0; i < claimCodeAttempts; i++ {
		code, err := generateClaimCode(entities.ClaimCodeLength)
		if err != nil {
			return "", err
		}
		exists, err := u.claimRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %d attempts exhausted", domainerrors.ErrCodeAllocationFailed, claimCodeAttempts)
}
