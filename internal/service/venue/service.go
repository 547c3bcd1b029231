package venue

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	pricingRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/pricing"
	"github.com/m04kA/TurfBookingService/internal/service/slots"
	"github.com/m04kA/TurfBookingService/internal/service/venue/models"
)

const (
	openTimeLabel  = "6:00 AM"
	closeTimeLabel = "12:00 AM"
)

// Service сервис информации о площадке, настроек и административного вида цен
type Service struct {
	pricingRepo     PricingRepository
	reservationRepo ReservationRepository
	settingRepo     SettingRepository
	blockLogRepo    BlockLogRepository
	sweeper         Sweeper
	txManager       TransactionManager
	defaultPrice    float64
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса площадки
func NewService(
	pricingRepo PricingRepository,
	reservationRepo ReservationRepository,
	settingRepo SettingRepository,
	blockLogRepo BlockLogRepository,
	sweeper Sweeper,
	txManager TransactionManager,
	defaultPrice float64,
	logger Logger,
) *Service {
	return &Service{
		pricingRepo:     pricingRepo,
		reservationRepo: reservationRepo,
		settingRepo:     settingRepo,
		blockLogRepo:    blockLogRepo,
		sweeper:         sweeper,
		txManager:       txManager,
		defaultPrice:    defaultPrice,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetTurfInfo минимальная цена незаблокированного слота на ближайшие 14 дней и контакты
func (s *Service) GetTurfInfo(ctx context.Context) (*models.TurfInfoResponse, error) {
	today := domain.BusinessToday(s.timeProvider.Now())
	to := today.AddDate(0, 0, domain.TurfInfoLookaheadDays-1)

	overrides, err := s.pricingRepo.GetByDateRange(ctx, today, to)
	if err != nil {
		s.logger.Error("GetTurfInfo: failed to get overrides: %v", err)
		return nil, fmt.Errorf("%w: GetTurfInfo - repository error: %v", ErrInternal, err)
	}

	byDate := make(map[time.Time][]domain.PricingOverride)
	for _, o := range overrides {
		day := domain.DateOnly(o.Date)
		byDate[day] = append(byDate[day], o)
	}

	// Занятость и прошедшие слоты на цену "от" не влияют, поэтому now = нулевое время
	minPrice := s.defaultPrice
	for day := today; !day.After(to); day = day.AddDate(0, 0, 1) {
		resolved := slots.Resolve(day, byDate[day], nil, time.Time{}, s.defaultPrice)
		if p, ok := slots.MinPrice(resolved); ok && p < minPrice {
			minPrice = p
		}
	}

	contacts, err := s.GetContactSettings(ctx)
	if err != nil {
		return nil, err
	}

	return &models.TurfInfoResponse{
		MinPrice:  minPrice,
		OpenTime:  openTimeLabel,
		CloseTime: closeTimeLabel,
		Contacts:  contacts,
	}, nil
}

// GetPublicSettings все настройки площадки кроме служебных ключей.
// Для пустой таблицы возвращаются значения по умолчанию
func (s *Service) GetPublicSettings(ctx context.Context) (map[string]string, error) {
	all, err := s.settingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetPublicSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPublicSettings - repository error: %v", ErrInternal, err)
	}

	result := make(map[string]string, len(all))
	for k, v := range all {
		if isReservedKey(k) {
			continue
		}
		result[k] = v
	}

	if len(result) == 0 {
		return copyMap(models.DefaultPublicSettings), nil
	}
	return result, nil
}

// GetContactSettings контактные настройки с заполненными значениями по умолчанию
func (s *Service) GetContactSettings(ctx context.Context) (map[string]string, error) {
	all, err := s.settingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetContactSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetContactSettings - repository error: %v", ErrInternal, err)
	}

	result := copyMap(models.DefaultContactSettings)
	for k := range result {
		if v, ok := all[k]; ok && v != "" {
			result[k] = v
		}
	}
	return result, nil
}

// UpdateSettings сохраняет строковые настройки (upsert по ключу)
func (s *Service) UpdateSettings(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: no settings provided", ErrInvalidInput)
	}

	settings := make([]domain.Setting, 0, len(values))
	for k, v := range values {
		key := strings.TrimSpace(k)
		if key == "" {
			return fmt.Errorf("%w: empty setting key", ErrInvalidInput)
		}
		if isReservedKey(key) {
			return fmt.Errorf("%w: %s", ErrReservedKey, key)
		}
		settings = append(settings, domain.Setting{Key: key, Value: v})
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })

	if err := s.settingRepo.Upsert(ctx, settings); err != nil {
		s.logger.Error("UpdateSettings: repository error: %v", err)
		return fmt.Errorf("%w: UpdateSettings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: updated %d settings", len(settings))
	return nil
}

// GetPricingView переопределения, активные брони и итоговые слоты на дату для администратора
func (s *Service) GetPricingView(ctx context.Context, date time.Time) (*models.PricingViewResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	day := domain.DateOnly(date)

	s.sweeper.SweepStale(ctx)

	overrides, err := s.pricingRepo.GetByDate(ctx, day)
	if err != nil {
		s.logger.Error("GetPricingView: failed to get overrides for %s: %v", domain.FormatDate(day), err)
		return nil, fmt.Errorf("%w: GetPricingView - repository error: %v", ErrInternal, err)
	}

	active, err := s.reservationRepo.GetActiveByDate(ctx, day)
	if err != nil {
		s.logger.Error("GetPricingView: failed to get reservations for %s: %v", domain.FormatDate(day), err)
		return nil, fmt.Errorf("%w: GetPricingView - repository error: %v", ErrInternal, err)
	}

	resolved := slots.Resolve(day, overrides, active, s.timeProvider.Now(), s.defaultPrice)

	return &models.PricingViewResponse{
		Date:      domain.FormatDate(day),
		Overrides: models.FromDomainOverrides(overrides),
		Bookings:  models.FromDomainActive(active),
		Slots:     models.FromDomainSlots(resolved),
	}, nil
}

// GetBlockLogs последние записи журнала блокировок, сначала новые
func (s *Service) GetBlockLogs(ctx context.Context) ([]models.BlockLogResponse, error) {
	entries, err := s.blockLogRepo.List(ctx, domain.BlockLogCap)
	if err != nil {
		s.logger.Error("GetBlockLogs: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBlockLogs - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBlockLogs(entries), nil
}

// ImportLegacyPricing переносит переопределения из старых ключей CUSTOM_PRICING_<date>
// таблицы settings в pricing_overrides. Перенесенные ключи удаляются.
// Ключи с некорректной датой пропускаются, некорректный JSON дает пустой список
func (s *Service) ImportLegacyPricing(ctx context.Context) (*models.ImportResponse, error) {
	legacy, err := s.settingRepo.GetByPrefix(ctx, pricingRepo.LegacyKeyPrefix)
	if err != nil {
		s.logger.Error("ImportLegacyPricing: repository error: %v", err)
		return nil, fmt.Errorf("%w: ImportLegacyPricing - repository error: %v", ErrInternal, err)
	}

	keys := make([]string, 0, len(legacy))
	for k := range legacy {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	resp := &models.ImportResponse{}
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, key := range keys {
			date, ok := pricingRepo.LegacyKeyDate(key)
			if !ok {
				resp.Skipped++
				continue
			}

			overrides := pricingRepo.DecodeLegacyOverrides(date, legacy[key])
			if err := s.pricingRepo.Merge(txCtx, date, overrides); err != nil {
				return fmt.Errorf("%w: ImportLegacyPricing - merge %s: %v", ErrInternal, key, err)
			}
			if err := s.settingRepo.Delete(txCtx, key); err != nil {
				return fmt.Errorf("%w: ImportLegacyPricing - delete %s: %v", ErrInternal, key, err)
			}

			resp.Dates++
			resp.Overrides += len(overrides)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("ImportLegacyPricing: %v", err)
		return nil, err
	}

	s.logger.Info("ImportLegacyPricing: imported %d overrides for %d dates, skipped %d keys",
		resp.Overrides, resp.Dates, resp.Skipped)
	return resp, nil
}

func isReservedKey(key string) bool {
	return strings.HasPrefix(key, pricingRepo.LegacyKeyPrefix)
}

func copyMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
