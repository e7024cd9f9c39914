package platform

import (
	"errors"
	"testing"

	"stopwatch/internal/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	available bool
	err       error
	sent      []Toast
}

func (m *mockSender) Send(toast Toast) error {
	m.sent = append(m.sent, toast)
	return m.err
}

func (m *mockSender) Available() bool {
	return m.available
}

func descriptorAt(body string, resume bool) notification.Descriptor {
	presenter := notification.NewPresenter(notification.DefaultConfig())
	if resume {
		presenter.ShowResume()
	}
	descriptor := presenter.Descriptor()
	descriptor.Body = body
	return descriptor
}

func TestToastHost_Lifecycle(t *testing.T) {
	t.Parallel()

	sender := &mockSender{available: true}
	host := NewToastHost(sender)

	require.NoError(t, host.PromoteForeground(descriptorAt("00:00:00", false)))
	require.NoError(t, host.PushNotification(descriptorAt("00:00:01", false)))
	require.NoError(t, host.PushNotification(descriptorAt("00:00:02", false)))
	require.NoError(t, host.PushNotification(descriptorAt("00:00:02", true)))
	require.NoError(t, host.PromoteForeground(descriptorAt("00:00:02", false)))
	require.NoError(t, host.DemoteForeground(10))

	assert.Equal(t, []Toast{
		{Title: "Stopwatch", Message: "Running from 00:00:00"},
		{Title: "Stopwatch", Message: "Stopped at 00:00:02"},
		{Title: "Stopwatch", Message: "Running from 00:00:02"},
		{Title: "Stopwatch", Message: "Canceled at 00:00:02"},
	}, sender.sent)
}

func TestToastHost(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		sender    *mockSender
		wantSent  int
		wantError bool
	}{
		"unavailable sender sends nothing": {
			sender:   &mockSender{available: false},
			wantSent: 0,
		},
		"send error is wrapped": {
			sender:    &mockSender{available: true, err: errors.New("dbus down")},
			wantSent:  1,
			wantError: true,
		},
		"available sender": {
			sender:   &mockSender{available: true},
			wantSent: 1,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			host := NewToastHost(tt.sender)
			err := host.PromoteForeground(descriptorAt("00:00:00", false))
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "send toast")
			} else {
				require.NoError(t, err)
			}
			assert.Len(t, tt.sender.sent, tt.wantSent)
		})
	}
}

func TestToastHost_DemoteWithoutPromote(t *testing.T) {
	t.Parallel()

	sender := &mockSender{available: true}
	require.NoError(t, NewToastHost(sender).DemoteForeground(10))
	assert.Equal(t, []Toast{{Title: "Stopwatch", Message: "Canceled"}}, sender.sent)
}

func TestToastHost_NilSender(t *testing.T) {
	t.Parallel()

	host := NewToastHost(nil)
	assert.NoError(t, host.PromoteForeground(descriptorAt("00:00:00", false)))
	assert.NoError(t, host.DemoteForeground(10))
}

func TestNewFyneSender_NilApp(t *testing.T) {
	t.Parallel()

	assert.False(t, NewFyneSender(nil).Available())
}

func TestService_AppConfigDir(t *testing.T) {
	t.Parallel()

	service := NewService()
	base, err := service.GetConfigDir()
	require.NoError(t, err)

	dir, err := service.AppConfigDir("Stopwatch")
	require.NoError(t, err)
	assert.Contains(t, dir, base)
	assert.Contains(t, dir, "Stopwatch")
}
