// Package promo integrates the external promotion service that owns coupon
// validation. The checkout core only forwards the code and relays the
// service's verdict.
package promo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
)

// HTTPCouponApplicator implements ports.CouponApplicator against the
// promotion service's REST API. A rejected coupon is a domain answer, not
// an error; only transport and protocol failures surface as errors.
type HTTPCouponApplicator struct {
	baseURL string
	client  *http.Client
}

// NewHTTPCouponApplicator creates a coupon applicator for the promotion
// service at baseURL.
func NewHTTPCouponApplicator(baseURL string) *HTTPCouponApplicator {
	return &HTTPCouponApplicator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type applyRequest struct {
	OrderNumber string `json:"order_number"`
	CouponCode  string `json:"coupon_code"`
	TotalCents  int64  `json:"total_cents"`
	Currency    string `json:"currency"`
}

type applyResponse struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason"`
}

// Apply submits the coupon code for the order to the promotion service.
func (a *HTTPCouponApplicator) Apply(
	ctx context.Context,
	aggregate *order.Order,
	couponCode string,
) (ports.CouponResult, error) {
	body, err := json.Marshal(applyRequest{
		OrderNumber: aggregate.Number(),
		CouponCode:  couponCode,
		TotalCents:  aggregate.Total().Cents(),
		Currency:    aggregate.Total().Currency(),
	})
	if err != nil {
		return ports.CouponResult{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		a.baseURL+"/api/v1/promotions/apply",
		bytes.NewReader(body),
	)
	if err != nil {
		return ports.CouponResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return ports.CouponResult{}, fmt.Errorf("promotion service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.CouponResult{}, fmt.Errorf("promotion service responded with status %d", resp.StatusCode)
	}

	var decoded applyResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.CouponResult{}, fmt.Errorf("promotion service response is malformed: %w", err)
	}

	return ports.CouponResult{Applied: decoded.Applied, Reason: decoded.Reason}, nil
}
