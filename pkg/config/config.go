package config

import (
	"sync"
)

var (
	// globalManager is the singleton configuration manager instance
	globalManager *Manager
	globalMu      sync.Mutex
)

// Initialize creates and initializes the global configuration manager.
// This should be called once at application startup. Environment
// overrides are applied after the file is loaded.
func Initialize(configPath string) error {
	manager, err := Load(configPath)
	if err != nil {
		return err
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	globalManager = manager
	return nil
}

// Load builds a manager for configPath without touching the global one.
func Load(configPath string) (*Manager, error) {
	store, err := NewFileStore(configPath)
	if err != nil {
		return nil, err
	}

	manager := NewManager(store)
	slide := NewSlideSection()
	ui := NewUISection()

	if err := manager.RegisterSection(slide); err != nil {
		return nil, err
	}
	if err := manager.RegisterSection(ui); err != nil {
		return nil, err
	}

	if err := manager.LoadAll(); err != nil {
		return nil, err
	}
	if err := ApplyEnv(slide, ui); err != nil {
		return nil, err
	}
	for _, section := range manager.GetSections() {
		if err := section.Validate(); err != nil {
			return nil, err
		}
	}

	return manager, nil
}

// Global returns the global configuration manager.
// Panics if Initialize has not been called.
func Global() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager == nil {
		panic("config not initialized: call config.Initialize first")
	}

	return globalManager
}

// IsInitialized returns true if the global configuration has been initialized.
func IsInitialized() bool {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalManager != nil
}

// GetSlide returns the slide section from global config.
// Returns defaults if config is not initialized.
func GetSlide() *SlideSection {
	if !IsInitialized() {
		return NewSlideSection()
	}
	return SlideFrom(Global())
}

// GetUI returns the UI section from global config.
// Returns defaults if config is not initialized.
func GetUI() *UISection {
	if !IsInitialized() {
		return NewUISection()
	}
	return UIFrom(Global())
}

// SlideFrom returns the slide section of m, or defaults if it is missing.
func SlideFrom(m *Manager) *SlideSection {
	section, ok := m.GetSection(SectionIDSlide)
	if !ok {
		return NewSlideSection()
	}
	slide, ok := section.(*SlideSection)
	if !ok {
		return NewSlideSection()
	}
	return slide
}

// UIFrom returns the UI section of m, or defaults if it is missing.
func UIFrom(m *Manager) *UISection {
	section, ok := m.GetSection(SectionIDUI)
	if !ok {
		return NewUISection()
	}
	ui, ok := section.(*UISection)
	if !ok {
		return NewUISection()
	}
	return ui
}
