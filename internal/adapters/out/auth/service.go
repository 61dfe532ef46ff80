// Package auth provides a static authorization service. Authentication is
// handled upstream; this adapter only answers the two access questions the
// checkout core asks, from a configured allow list.
package auth

import (
	"context"

	"checkout/internal/core/domain/model/kernel"
)

// StaticAuthorizationService implements ports.AuthorizationService from
// configuration. Every authenticated buyer may create orders; elevated
// privilege is granted to the configured identities only.
type StaticAuthorizationService struct {
	privileged map[string]struct{}
}

// NewStaticAuthorizationService creates an authorization service with the
// given privileged user identities.
func NewStaticAuthorizationService(privilegedUserIDs []string) *StaticAuthorizationService {
	privileged := make(map[string]struct{}, len(privilegedUserIDs))
	for _, id := range privilegedUserIDs {
		privileged[id] = struct{}{}
	}
	return &StaticAuthorizationService{privileged: privileged}
}

// CanCreateOrder reports whether the buyer identity may create orders.
// Any valid identity may; anonymous checkout is not supported.
func (s *StaticAuthorizationService) CanCreateOrder(_ context.Context, buyerID kernel.UUID) (bool, error) {
	return buyerID.Validate() == nil, nil
}

// IsPrivileged reports whether the user is on the configured privilege list.
func (s *StaticAuthorizationService) IsPrivileged(_ context.Context, userID kernel.UUID) (bool, error) {
	_, ok := s.privileged[userID.String()]
	return ok, nil
}
