package booking

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"sweeply/models"
	"sweeply/services/pricing"
	"sweeply/utils"

	"go.uber.org/zap"
)

const quoteCacheTTL = 5 * time.Minute

// CalculateQuote resolves the catalog entities referenced by the request and
// runs the pure price calculation. Identical requests are answered from the
// cache; the quote itself is never persisted.
func (s *DefaultBookingService) CalculateQuote(ctx context.Context, req models.QuoteRequest) (*models.PriceQuote, error) {
	cacheKey := quoteCacheKey(req)
	if cached := s.cachedQuote(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	svc, err := s.Catalog.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	lines, err := s.resolveExtras(ctx, req.Extras)
	if err != nil {
		return nil, err
	}

	var suburb *models.Suburb
	if req.SuburbID != "" {
		suburb, err = s.Catalog.GetSuburbByID(ctx, req.SuburbID)
		if err != nil {
			return nil, err
		}
	}

	quote, err := pricing.Quote(*svc, req.Bedrooms, req.Bathrooms, lines, suburb, req.Frequency)
	if err != nil {
		return nil, err
	}

	s.cacheQuote(ctx, cacheKey, quote)
	return &quote, nil
}

// resolveExtras looks up the selected extras in the catalog. Referencing an
// unknown or inactive extra is a validation failure, not a lookup miss: the
// client sent an id the catalog never offered it.
func (s *DefaultBookingService) resolveExtras(ctx context.Context, selections []models.ExtraSelection) ([]pricing.ExtraLine, error) {
	if len(selections) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(selections))
	for _, sel := range selections {
		ids = append(ids, sel.ExtraID)
	}
	extras, err := s.Catalog.GetExtrasByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Extra, len(extras))
	for _, e := range extras {
		byID[e.ID] = e
	}

	lines := make([]pricing.ExtraLine, 0, len(selections))
	for _, sel := range selections {
		extra, ok := byID[sel.ExtraID]
		if !ok {
			return nil, utils.NewValidationError("unknown extra %q", sel.ExtraID)
		}
		lines = append(lines, pricing.ExtraLine{Extra: extra, Quantity: sel.Quantity})
	}
	return lines, nil
}

func quoteCacheKey(req models.QuoteRequest) string {
	raw, _ := json.Marshal(req)
	sum := sha256.Sum256(raw)
	return "quote:" + hex.EncodeToString(sum[:])
}

func (s *DefaultBookingService) cachedQuote(ctx context.Context, key string) *models.PriceQuote {
	if s.CacheClient == nil {
		return nil
	}
	data, err := s.CacheClient.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var quote models.PriceQuote
	if err := json.Unmarshal([]byte(data), &quote); err != nil {
		return nil
	}
	return &quote
}

func (s *DefaultBookingService) cacheQuote(ctx context.Context, key string, quote models.PriceQuote) {
	if s.CacheClient == nil {
		return
	}
	data, err := json.Marshal(quote)
	if err != nil {
		return
	}
	if err := s.CacheClient.Set(ctx, key, data, quoteCacheTTL).Err(); err != nil {
		s.Logger.Warn("failed to cache quote", zap.Error(err))
	}
}
