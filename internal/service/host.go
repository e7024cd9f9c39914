package service

import (
	"errors"

	"stopwatch/internal/notification"
)

// Host is the platform surface the service runs on: it can promote the
// service to a visible foreground tier with a notification attached, replace
// that notification, and tear it down again.
type Host interface {
	PromoteForeground(descriptor notification.Descriptor) error
	PushNotification(descriptor notification.Descriptor) error
	DemoteForeground(slotID int) error
}

// MultiHost forwards every call to each host in order.
type MultiHost []Host

func (hosts MultiHost) PromoteForeground(descriptor notification.Descriptor) error {
	var errs []error
	for _, host := range hosts {
		if err := host.PromoteForeground(descriptor); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (hosts MultiHost) PushNotification(descriptor notification.Descriptor) error {
	var errs []error
	for _, host := range hosts {
		if err := host.PushNotification(descriptor); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (hosts MultiHost) DemoteForeground(slotID int) error {
	var errs []error
	for _, host := range hosts {
		if err := host.DemoteForeground(slotID); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type noopHost struct{}

func (noopHost) PromoteForeground(notification.Descriptor) error { return nil }
func (noopHost) PushNotification(notification.Descriptor) error  { return nil }
func (noopHost) DemoteForeground(int) error                      { return nil }
