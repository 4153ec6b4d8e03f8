package controllers

import (
	"context"
	"errors"
	"net/http"
	"registration-service/internal/app/config"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// requestContext bounds usecase work by APP_REQUEST_TIMEOUT_IN_SECONDS while
// keeping the request scoped values set by middlewares.
func requestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
