// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"libris/pkg/logger"
)

// Ключи Locals и заголовков запроса.
const (
	HeaderRequestID     = "X-Request-ID"
	LocalsRequestCtxKey = "requestContext"
)

// NewRequestIDMiddleware прокидывает идентификатор запроса из заголовка
// в контекст; отсутствующий идентификатор генерируется.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(HeaderRequestID)
		requestCtx := logger.NewRequestIDContext(ctx.Context(), requestID)

		ctx.Locals(LocalsRequestCtxKey, requestCtx)
		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(HeaderRequestID, id)
		}

		return ctx.Next()
	}
}

// RequestContext возвращает контекст запроса с идентификатором запроса.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(LocalsRequestCtxKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}
