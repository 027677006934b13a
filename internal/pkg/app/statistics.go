package app

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/camp-enroll/pkg/statistics"
)

// NewStatisticsMW pushes every handled request to the statistics topic.
// Liveness and health probes are not worth counting.
func NewStatisticsMW(stat *statistics.KafkaStatistics, logger *slog.Logger) (fiber.Handler, error) {
	return func(ctx *fiber.Ctx) error {
		if ctx.Path() == "/" || ctx.Path() == "/health" {
			return ctx.Next()
		}

		headers := ctx.GetReqHeaders()

		headersStr := ""
		for key, header := range headers {
			value := strings.Join(header, ", ")

			headersStr += key + ": " + value + "\r\n"
		}

		req := statistics.Request{
			Method:  ctx.Method(),
			URL:     ctx.OriginalURL(),
			Body:    string(ctx.Body()),
			Headers: headersStr,
		}

		err := stat.Push(ctx.Context(), req)
		if err != nil {
			logger.Error("push request statistics", slog.String("error", err.Error()))
		}

		return ctx.Next()
	}, nil
}
