package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/smart-travel-planner/internal/domain"
)

func TestTransportError_UserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  domain.TransportError
		want string
	}{
		{"upstream detail wins", domain.TransportError{StatusCode: 400, Detail: "City not found"}, "City not found"},
		{"no response", domain.TransportError{Err: errors.New("connection refused")}, domain.MsgConnectFailed},
		{"unreadable success body", domain.TransportError{StatusCode: 200, Err: errors.New("decode response")}, domain.MsgConnectFailed},
		{"server error", domain.TransportError{StatusCode: 500}, domain.MsgPlanFailed},
		{"client error", domain.TransportError{StatusCode: 404}, domain.MsgPlanFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.UserMessage())
		})
	}
}

func TestTransportError_IsErrTransport(t *testing.T) {
	var err error = &domain.TransportError{StatusCode: 502}

	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}
