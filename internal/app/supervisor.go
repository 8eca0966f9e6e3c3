package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// Supervise перезапускает run после любого сбоя с фиксированной паузой,
// без роста backoff и без ограничения числа попыток. Паника внутри run
// тоже считается сбоем. Возвращается только после отмены контекста.
func Supervise(ctx context.Context, name string, delay time.Duration, logger *zap.Logger, run func(context.Context) error) error {
	backoff := retry.NewConstant(delay)

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := runRecovered(ctx, run)
		if err == nil || ctx.Err() != nil {
			return err
		}

		logger.Error("Supervised task crashed, restarting",
			zap.String("task", name),
			zap.Duration("delay", delay),
			zap.Error(err))

		return retry.RetryableError(err)
	})
}

// runRecovered превращает панику в обычную ошибку
func runRecovered(ctx context.Context, run func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return run(ctx)
}
