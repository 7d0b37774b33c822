package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
	"github.com/jhoicas/atelier-api/pkg/logger"
)

// SettingsUseCase configuración del site (horários, landing page, telefone).
type SettingsUseCase struct {
	repo repository.SettingsRepository
	log  *logger.Logger
	now  Clock
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository, log *logger.Logger, now Clock) *SettingsUseCase {
	if now == nil {
		now = time.Now
	}
	return &SettingsUseCase{repo: repo, log: log.Named("settings"), now: now}
}

// Load superpone lo persistido sobre los valores por defecto. Una clave con JSON
// inválido se ignora (queda el default) y se registra.
func (uc *SettingsUseCase) Load(ctx context.Context) (dto.SettingsResponse, error) {
	out := dto.SettingsResponse{
		BusinessHours: entity.DefaultBusinessHours(),
		LandingPage:   entity.DefaultLandingPage(),
	}
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return out, fmt.Errorf("carregar configurações: %w: %w", domain.ErrGateway, err)
	}
	for _, s := range rows {
		var target any
		switch s.Key {
		case entity.SettingBusinessHours:
			target = &out.BusinessHours
		case entity.SettingLandingPage:
			target = &out.LandingPage
		case entity.SettingContactPhone:
			target = &out.ContactPhone
		default:
			continue
		}
		if err := json.Unmarshal(s.Value, target); err != nil {
			uc.log.Warn().Err(err).Str("key", s.Key).Msg("valor de configuração inválido; usando o padrão")
		}
	}
	return out, nil
}

// Save hace upsert de cada sección presente en la petición.
func (uc *SettingsUseCase) Save(ctx context.Context, in dto.SaveSettingsRequest) (dto.SettingsResponse, error) {
	now := uc.now()
	pending := map[string]any{}
	if in.BusinessHours != nil {
		pending[entity.SettingBusinessHours] = in.BusinessHours
	}
	if in.LandingPage != nil {
		pending[entity.SettingLandingPage] = in.LandingPage
	}
	if in.ContactPhone != nil {
		pending[entity.SettingContactPhone] = *in.ContactPhone
	}
	for _, key := range []string{entity.SettingBusinessHours, entity.SettingLandingPage, entity.SettingContactPhone} {
		v, ok := pending[key]
		if !ok {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return dto.SettingsResponse{}, fmt.Errorf("serializar %s: %w", key, err)
		}
		if err := uc.repo.Upsert(ctx, entity.Setting{Key: key, Value: raw, UpdatedAt: now}); err != nil {
			return dto.SettingsResponse{}, fmt.Errorf("salvar %s: %w: %w", key, domain.ErrGateway, err)
		}
	}
	return uc.Load(ctx)
}
