package theme

import (
	"context"
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	portalService   = "org.freedesktop.portal.Desktop"
	portalPath      = dbus.ObjectPath("/org/freedesktop/portal/desktop")
	portalSettings  = "org.freedesktop.portal.Settings"
	appearanceNS    = "org.freedesktop.appearance"
	colorSchemeKey  = "color-scheme"
	settingsChanged = "SettingChanged"
)

// Portal reads the desktop colour scheme from the freedesktop settings
// portal on the session bus.
type Portal struct {
	conn *dbus.Conn
}

// NewPortal connects to the session bus.
func NewPortal() (*Portal, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	return &Portal{conn: conn}, nil
}

// Close closes the bus connection.
func (p *Portal) Close() error {
	return p.conn.Close()
}

func (p *Portal) Current(ctx context.Context) (Scheme, error) {
	obj := p.conn.Object(portalService, portalPath)

	var v dbus.Variant
	call := obj.CallWithContext(ctx, portalSettings+".Read", 0, appearanceNS, colorSchemeKey)
	if err := call.Store(&v); err != nil {
		return NoPreference, fmt.Errorf("reading %s.%s: %w", appearanceNS, colorSchemeKey, err)
	}
	return schemeFromVariant(v)
}

func (p *Portal) Watch(ctx context.Context, fn func(Scheme)) error {
	opts := []dbus.MatchOption{
		dbus.WithMatchObjectPath(portalPath),
		dbus.WithMatchInterface(portalSettings),
		dbus.WithMatchMember(settingsChanged),
	}
	if err := p.conn.AddMatchSignal(opts...); err != nil {
		return fmt.Errorf("subscribing to %s: %w", settingsChanged, err)
	}
	defer p.conn.RemoveMatchSignal(opts...)

	ch := make(chan *dbus.Signal, 8)
	p.conn.Signal(ch)
	defer p.conn.RemoveSignal(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig, ok := <-ch:
			if !ok {
				return errors.New("session bus closed")
			}
			if s, ok := schemeFromSignal(sig); ok {
				fn(s)
			}
		}
	}
}

func schemeFromSignal(sig *dbus.Signal) (Scheme, bool) {
	if sig == nil || sig.Name != portalSettings+"."+settingsChanged || len(sig.Body) != 3 {
		return NoPreference, false
	}
	ns, _ := sig.Body[0].(string)
	key, _ := sig.Body[1].(string)
	if ns != appearanceNS || key != colorSchemeKey {
		return NoPreference, false
	}
	v, ok := sig.Body[2].(dbus.Variant)
	if !ok {
		return NoPreference, false
	}
	s, err := schemeFromVariant(v)
	return s, err == nil
}

// schemeFromVariant decodes the portal value: 0 no preference, 1 prefer
// dark, 2 prefer light. Read wraps the value in one more variant.
func schemeFromVariant(v dbus.Variant) (Scheme, error) {
	val := v.Value()
	if inner, ok := val.(dbus.Variant); ok {
		val = inner.Value()
	}
	n, ok := val.(uint32)
	if !ok {
		return NoPreference, fmt.Errorf("unexpected %s value %v", colorSchemeKey, val)
	}
	switch n {
	case 1:
		return Dark, nil
	case 2:
		return Light, nil
	default:
		return NoPreference, nil
	}
}
