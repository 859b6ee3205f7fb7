package impl

import (
	"pawtrack/internal/domain/entity"
	"pawtrack/internal/usecase"
)

func toProviderView(p *entity.ServiceProvider) usecase.ProviderView {
	phones := make([]usecase.PhoneView, 0, len(p.Phones))
	for _, phone := range p.Phones {
		phones = append(phones, usecase.PhoneView{PhoneNumber: phone.PhoneNumber})
	}

	return usecase.ProviderView{
		ProviderID:   p.ID,
		Name:         p.Name,
		ServiceType:  p.ServiceType,
		Email:        p.Email,
		Membership:   p.Membership,
		Phones:       phones,
		WorkingHours: toWorkingHoursViews(p.WorkingHours),
		Locations:    toLocationViews(p.Locations),
	}
}

func toOpenProviderView(p *entity.ServiceProvider) usecase.OpenProviderView {
	return usecase.OpenProviderView{
		ProviderID:   p.ID,
		Name:         p.Name,
		ServiceType:  p.ServiceType,
		WorkingHours: toWorkingHoursViews(p.WorkingHours),
		Locations:    toLocationViews(p.Locations),
	}
}

func toWorkingHoursViews(intervals []entity.WorkingHours) []usecase.WorkingHoursView {
	views := make([]usecase.WorkingHoursView, 0, len(intervals))
	for _, wh := range intervals {
		views = append(views, usecase.WorkingHoursView{
			DayOfWeek: wh.DayOfWeek,
			StartTime: wh.StartTime,
			EndTime:   wh.EndTime,
		})
	}

	return views
}

func toLocationViews(locations []entity.ProviderLocation) []usecase.LocationView {
	views := make([]usecase.LocationView, 0, len(locations))
	for _, l := range locations {
		views = append(views, toLocationView(l))
	}

	return views
}

func toLocationView(l entity.ProviderLocation) usecase.LocationView {
	return usecase.LocationView{
		LocationID:  l.ID,
		FullAddress: l.FullAddress,
		GeoLocation: l.GeoLocation,
	}
}
