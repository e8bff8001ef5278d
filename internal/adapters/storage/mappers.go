package storage

import (
	"github.com/xray-forge/xrf-shell/internal/domain"
)

// recentModelToDomain converts a RecentModel (GORM) to domain.RecentResource
func recentModelToDomain(m RecentModel) domain.RecentResource {
	return domain.RecentResource{
		Editor:   domain.EditorKind(m.Editor),
		ID:       m.ID,
		Label:    m.Label,
		Locators: m.Locators,
		OpenedAt: m.OpenedAt,
	}
}

// domainToRecentModel converts a domain.RecentResource to RecentModel (GORM)
func domainToRecentModel(r domain.RecentResource) RecentModel {
	locators := r.Locators
	if locators == nil {
		locators = map[string]string{}
	}
	return RecentModel{
		Editor:      string(r.Editor),
		ID:          r.ID,
		Label:       r.Label,
		Locators:    locators,
		OpenedAt:    r.OpenedAt,
		ResourceKey: r.Key(),
	}
}
