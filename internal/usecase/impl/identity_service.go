package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface. It is the
// explicit replacement for framework-level "current user" injection: the
// handler hands it the raw bearer token, it hands back the account.
type identityService struct {
	tokenService service.TokenService
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TokenService service.TokenService
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		tokenService: params.TokenService,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve verifies the token and loads the referenced account.
func (srv *identityService) Resolve(ctx context.Context, rawToken string) (*entity.User, error) {
	claims, err := srv.tokenService.Validate(rawToken)
	if err != nil {
		return nil, errors.Wrap(err, "token verification failed")
	}

	if claims.UserID == 0 {
		// Signed by us but missing the identity claim: malformed payload.
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token carries no account identifier")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Valid token for missing account", slog.Uint64("userID", uint64(claims.UserID)))

			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account referenced by token does not exist")
		}

		return nil, errors.Wrap(err, "failed to load account for token")
	}

	return user, nil
}
