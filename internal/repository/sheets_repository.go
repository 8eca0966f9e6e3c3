package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/artbeauty/intake-bot/internal/model"
)

// SheetsRepository пишет заявки в Google Sheets append-ом строк
type SheetsRepository struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	logger        *zap.Logger
}

// NewSheetsRepository создаёт репозиторий с сервисным аккаунтом из credentials-файла
func NewSheetsRepository(ctx context.Context, credentialsPath, spreadsheetID, sheetName string, logger *zap.Logger) (*SheetsRepository, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return NewSheetsRepositoryWithService(svc, spreadsheetID, sheetName, logger), nil
}

// NewSheetsRepositoryWithService создаёт репозиторий поверх готового клиента.
// Используется в тестах с подменённым endpoint.
func NewSheetsRepositoryWithService(svc *sheets.Service, spreadsheetID, sheetName string, logger *zap.Logger) *SheetsRepository {
	return &SheetsRepository{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        logger,
	}
}

// AppendApplication добавляет строку заявки в таблицу.
// Сначала пробует именованный лист; если лист назван неверно или
// отсутствует, повторяет append без указания листа — в первый лист таблицы.
func (r *SheetsRepository) AppendApplication(ctx context.Context, app *model.Application) error {
	values := &sheets.ValueRange{
		Values: [][]interface{}{app.Row()},
	}

	qualified := fmt.Sprintf("%s!A1", r.sheetName)
	err := r.append(ctx, qualified, values)
	if err == nil {
		return nil
	}

	r.logger.Warn("Append to named sheet failed, retrying first sheet",
		zap.String("range", qualified),
		zap.Error(err))

	if err := r.append(ctx, "A1", values); err != nil {
		return fmt.Errorf("append application: %w", err)
	}

	r.logger.Info("Application saved to first sheet")
	return nil
}

func (r *SheetsRepository) append(ctx context.Context, appendRange string, values *sheets.ValueRange) error {
	_, err := r.svc.Spreadsheets.Values.
		Append(r.spreadsheetID, appendRange, values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}
