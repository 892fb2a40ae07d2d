package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"time"

	"github.com/SscSPs/product_transactions/internal/apperrors"
	"github.com/SscSPs/product_transactions/internal/core/domain"
	"github.com/SscSPs/product_transactions/internal/core/ports"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxPayloadBytes bounds how much of the upstream body is read.
const maxPayloadBytes = 32 << 20

// productRecord is one element of the upstream JSON array.
type productRecord struct {
	ID          int64           `json:"id" validate:"required,gt=0"`
	Title       string          `json:"title" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Sold        bool            `json:"sold"`
	DateOfSale  time.Time       `json:"dateOfSale" validate:"required"`
}

func (r productRecord) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Sold:        r.Sold,
		DateOfSale:  r.DateOfSale,
		Image:       r.Image,
	}
}

// HTTPSource fetches the seed dataset with a plain GET.
type HTTPSource struct {
	url        string
	httpClient *http.Client
	validate   *validator.Validate
}

// NewHTTPSource creates a source reading from url. timeout bounds the whole request.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return &HTTPSource{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		validate:   v,
	}
}

// Ensure HTTPSource implements the DatasetSource interface
var _ ports.DatasetSource = (*HTTPSource)(nil)

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

// FetchTransactions implements ports.DatasetSource.
// Transport failures, non-2xx statuses and undecodable bodies wrap apperrors.ErrUpstreamFetch.
// Records failing field validation wrap apperrors.ErrValidation.
func (s *HTTPSource) FetchTransactions(ctx context.Context) ([]domain.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", apperrors.ErrUpstreamFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrUpstreamFetch, resp.StatusCode)
	}

	var payload []productRecord
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayloadBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding payload: %v", apperrors.ErrUpstreamFetch, err)
	}

	records := make([]domain.Transaction, 0, len(payload))
	for i, rec := range payload {
		if err := s.validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", apperrors.ErrValidation, i, err)
		}
		records = append(records, rec.toDomain())
	}
	return records, nil
}
