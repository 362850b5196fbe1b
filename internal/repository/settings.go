package repository

import (
	"context"
	"strings"

	"log/slog"

	"github.com/apx-soporte/warranty-tracker/gen/ent"
	"github.com/apx-soporte/warranty-tracker/gen/ent/setting"
	"github.com/apx-soporte/warranty-tracker/internal/common"
)

// SettingsRepository is the durable key-value store. Get returns "" for an
// absent key; callers treat empty and missing the same way.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type settingsRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSettingsRepository(client *ent.Client, logger *slog.Logger) SettingsRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &settingsRepo{client: client, logger: logger}
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, error) {
	row, err := r.client.Setting.Query().
		Where(setting.Key(key)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		r.logger.Error("failed to read setting", "key", key, "error", err)
		return "", common.WrapError(err, "read setting")
	}
	return row.Value, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	row, err := r.client.Setting.Query().
		Where(setting.Key(key)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.Setting.Create().SetKey(key).SetValue(value).Save(ctx)
	case err == nil:
		_, err = r.client.Setting.UpdateOne(row).SetValue(value).Save(ctx)
	}
	if err != nil {
		r.logger.Error("failed to write setting", "key", key, "error", err)
		return common.WrapError(err, "write setting")
	}
	return nil
}
