package config

import (
	"github.com/fsnotify/fsnotify"
)

// OnConfigChange registers cb to receive every successfully reloaded config.
func (m *Manager) OnConfigChange(cb func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}

// Watch starts watching the configuration file. Invalid edits are ignored
// and the previous configuration stays current.
func (m *Manager) Watch() {
	m.mu.Lock()
	if m.watching {
		m.mu.Unlock()
		return
	}
	m.watching = true
	m.mu.Unlock()

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		_ = m.reload()
	})
	m.viper.WatchConfig()
}

func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	cfg, err := m.decode()
	if err != nil {
		return err
	}
	m.config = cfg
	m.notifyCallbacksLocked()
	return nil
}

func (m *Manager) notifyCallbacksLocked() {
	if len(m.callbacks) == 0 {
		return
	}
	cfg := *m.config
	for _, cb := range m.callbacks {
		snapshot := cfg
		go cb(&snapshot)
	}
}
