package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"paylink.backend/internal/domain/entities"
	domainerrors "paylink.backend/internal/domain/errors"
	"paylink.backend/internal/domain/repositories"
	pkgcrypto "paylink.backend/pkg/crypto"
	"paylink.backend/pkg/jwt"
)

// NonceStore keeps pending login nonces
type NonceStore interface {
	Put(ctx context.Context, walletAddress, nonce string) error
	Get(ctx context.Context, walletAddress string) (string, error)
	Consume(ctx context.Context, walletAddress string) error
}

// AuthUsecase handles wallet-signature (sign-in-with-Ethereum style) login
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	nonces     NonceStore
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, nonces NonceStore, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		nonces:     nonces,
		jwtService: jwtService,
	}
}

// Nonce issues a fresh single-use login nonce for a wallet
func (u *AuthUsecase) Nonce(ctx context.Context, input *entities.NonceInput) (*entities.NonceResponse, error) {
	if !common.IsHexAddress(input.WalletAddress) {
		return nil, domainerrors.BadRequest("invalid wallet address format")
	}

	nonce, err := pkgcrypto.GenerateNonce()
	if err != nil {
		return nil, err
	}
	if err := u.nonces.Put(ctx, input.WalletAddress, nonce); err != nil {
		return nil, err
	}

	return &entities.NonceResponse{Nonce: nonce}, nil
}

// Verify checks the signed login message, consumes the nonce, and returns a
// token pair for the (possibly new) user
func (u *AuthUsecase) Verify(ctx context.Context, input *entities.VerifyInput) (*entities.AuthResponse, error) {
	if !common.IsHexAddress(input.WalletAddress) {
		return nil, domainerrors.BadRequest("invalid wallet address format")
	}

	nonce, err := u.nonces.Get(ctx, input.WalletAddress)
	if err != nil {
		return nil, domainerrors.Unauthorized("no pending nonce for wallet, request a new one")
	}
	if !strings.Contains(input.Message, nonce) {
		return nil, domainerrors.Unauthorized("message does not contain the issued nonce")
	}

	signer, err := recoverPersonalSigner(input.Message, input.Signature)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid signature")
	}
	if !strings.EqualFold(signer, input.WalletAddress) {
		return nil, domainerrors.Unauthorized("signature does not match wallet address")
	}

	// Single use: consume before issuing tokens
	if err := u.nonces.Consume(ctx, input.WalletAddress); err != nil {
		return nil, err
	}

	user, err := u.userRepo.Upsert(ctx, input.WalletAddress)
	if err != nil {
		return nil, err
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.WalletAddress)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}

// recoverPersonalSigner recovers the address that produced an EIP-191
// personal_sign signature over message
func recoverPersonalSigner(message, signature string) (string, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return "", fmt.Errorf("invalid signature hex: %w", err)
	}
	if len(sig) != 65 {
		return "", fmt.Errorf("invalid signature length %d", len(sig))
	}

	// Wallets return V as 27/28; SigToPub expects 0/1
	sig = append([]byte(nil), sig...)
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	hash := accounts.TextHash([]byte(message))
	pub, err := ethcrypto.SigToPub(hash, sig)
	if err != nil {
		return "", fmt.Errorf("signature recovery failed: %w", err)
	}
	return ethcrypto.PubkeyToAddress(*pub).Hex(), nil
}
